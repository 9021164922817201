// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFile is the node's answer to a multipart upload. The id is passed
// to a later create or edit call.
type UploadedFile struct {
	FileUploadID string `json:"file_upload_id"`
}

// SuccessResponse is returned by endpoints that have no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}
