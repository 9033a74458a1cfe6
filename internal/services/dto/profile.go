package dto

import "zanara/internal/models"

// ==========================
// Media upload
// ==========================

// UploadFailure names one rejected file in a batch.
type UploadFailure struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// UploadResult is the server's per-file verdict on an upload batch. Only
// the accepted subset may be appended to local portfolio state; already
// stored items are never lost to a partial failure.
type UploadResult struct {
	Accepted []models.MediaRef `json:"accepted"`
	Rejected []UploadFailure   `json:"rejected,omitempty"`
}

// ==========================
// Portfolio ordering
// ==========================

// ReorderRequest replaces the portfolio order wholesale.
type ReorderRequest struct {
	PhotoIDs []string `json:"photo_ids"`
	VideoIDs []string `json:"video_ids"`
}

// ==========================
// Connections
// ==========================

type ConnectionStatusResponse struct {
	Status string `json:"status"`
}

type ConnectionRequest struct {
	ProfileID   string `json:"profile_id" validate:"required"`
	Message     string `json:"message" validate:"omitempty,max=500"`
	ProfileType string `json:"profile_type"`
}
