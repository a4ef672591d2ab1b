package models

import "time"

// PhotoMetadata holds EXIF-like capture details
type PhotoMetadata struct {
	Camera       string     `json:"camera,omitempty" yaml:"camera"`
	Lens         string     `json:"lens,omitempty" yaml:"lens"`
	ISO          int        `json:"iso,omitempty" yaml:"iso"`
	Aperture     string     `json:"aperture,omitempty" yaml:"aperture"`
	ShutterSpeed string     `json:"shutterSpeed,omitempty" yaml:"shutterSpeed"`
	TakenAt      *time.Time `json:"takenAt,omitempty" yaml:"takenAt"`
}

// Photo is an image record. The binary lives elsewhere; only URLs are kept.
type Photo struct {
	ID           string         `json:"id" yaml:"id"`
	FolderID     string         `json:"folderId" yaml:"folderId"`
	ProjectID    string         `json:"projectId" yaml:"projectId"`
	Filename     string         `json:"filename" yaml:"filename"`
	OriginalName string         `json:"originalName,omitempty" yaml:"originalName"`
	URL          string         `json:"url" yaml:"url"`
	ThumbnailURL string         `json:"thumbnailUrl" yaml:"thumbnailUrl"`
	Size         int64          `json:"size" yaml:"size"`
	Width        int            `json:"width" yaml:"width"`
	Height       int            `json:"height" yaml:"height"`
	Metadata     *PhotoMetadata `json:"metadata,omitempty" yaml:"metadata"`
	UploadedAt   time.Time      `json:"uploadedAt" yaml:"uploadedAt"`
}
