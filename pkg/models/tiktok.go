package models

import "encoding/json"

// TikTokResponse is the upstream body of /download/tiktok.
type TikTokResponse struct {
	Status
	Data *TikTokData `json:"data" validate:"required"`
}

type TikTokData struct {
	ID        json.RawMessage `json:"id"`
	Region    string          `json:"region"`
	Title     string          `json:"title"`
	Duration  json.RawMessage `json:"duration"`
	Repro     json.RawMessage `json:"repro"`
	Like      json.RawMessage `json:"like"`
	Share     json.RawMessage `json:"share"`
	Comment   json.RawMessage `json:"comment"`
	Download  json.RawMessage `json:"download"`
	Published json.RawMessage `json:"published"`
	Author    *TikTokAuthor   `json:"author" validate:"required"`
	Music     *TikTokMusic    `json:"music" validate:"required"`
	Meta      *TikTokMeta     `json:"meta" validate:"required"`
}

type TikTokAuthor struct {
	ID       json.RawMessage `json:"id"`
	Username string          `json:"username"`
	Nickname string          `json:"nickname"`
}

type TikTokMusic struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Duration json.RawMessage `json:"duration"`
}

type TikTokMeta struct {
	Media []TikTokMedia `json:"media"`
}

type TikTokMedia struct {
	Type    string          `json:"type"`
	SizeOrg json.RawMessage `json:"size_org"`
	SizeHD  json.RawMessage `json:"size_hd"`
	Org     string          `json:"org"`
	HD      string          `json:"hd"`
}

// TikTokResult is the Spanish-labeled output of /api/tiktok.
type TikTokResult struct {
	ID              json.RawMessage `json:"id"`
	Region          string          `json:"región"`
	Title           string          `json:"título"`
	DurationSeconds json.RawMessage `json:"duración_segundos"`
	Plays           json.RawMessage `json:"reproducciones"`
	Likes           json.RawMessage `json:"me_gusta"`
	Shares          json.RawMessage `json:"compartidos"`
	Comments        json.RawMessage `json:"comentarios"`
	TotalDownloads  json.RawMessage `json:"descargas_totales"`
	Published       json.RawMessage `json:"publicado"`
	Author          TikTokCreator   `json:"autor"`
	Music           TikTokSong      `json:"música"`
	Links           TikTokLinks     `json:"enlaces"`
}

type TikTokCreator struct {
	ID       json.RawMessage `json:"id"`
	Username string          `json:"usuario"`
	Nickname string          `json:"nombre"`
}

type TikTokSong struct {
	Title           string          `json:"título"`
	Author          string          `json:"autor"`
	DurationSeconds json.RawMessage `json:"duración_segundos"`
}

type TikTokLinks struct {
	Type         string          `json:"tipo"`
	OriginalSize json.RawMessage `json:"tamaño_original"`
	HDSize       json.RawMessage `json:"tamaño_hd"`
	OriginalURL  string          `json:"video_original"`
	HDURL        string          `json:"video_hd"`
}
