package api

import "time"

type ChatResponse struct {
	Content string `json:"content"`
}

type ExpandResponse struct {
	Nodes []string `json:"nodes"`
}

type SaveFileResponse struct {
	Path string `json:"path"`
}

type RecentFile struct {
	Path     string    `json:"path"`
	Title    string    `json:"title"`
	OpenedAt time.Time `json:"opened_at"`
}

type RecentFilesResponse struct {
	Files []RecentFile `json:"files"`
}
