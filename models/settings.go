package models

import "gorm.io/gorm"

// Settings is a singleton row created with defaults on first read.
type Settings struct {
	gorm.Model
	SiteName       string `json:"siteName"`
	Copyright      string `json:"copyright"`
	SeoTitle       string `json:"seoTitle"`
	SeoDescription string `json:"seoDescription"`
	SeoKeywords    string `json:"seoKeywords"`
	AdminName      string `json:"adminName"`
	ProfileImage   string `json:"profileImage"`
}
