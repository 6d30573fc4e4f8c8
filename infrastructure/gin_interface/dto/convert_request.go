package dto

type ConvertRequest struct {
	Key string `json:"key" binding:"required"`
}

type ConvertResponse struct {
	TextKey    string `json:"text_key"`
	AudioKey   string `json:"audio_key"`
	AudioBytes int    `json:"audio_bytes"`
	Message    string `json:"message"`
}
