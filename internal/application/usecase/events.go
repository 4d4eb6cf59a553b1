package usecase

import "encoding/json"

const (
	EventVideoCreated = "video.created"
	EventVideoDeleted = "video.deleted"
)

type lifecycleEvent struct {
	Event   string `json:"event"`
	VideoID string `json:"videoId"`
}

func encodeEvent(event, videoID string) string {
	body, _ := json.Marshal(lifecycleEvent{Event: event, VideoID: videoID})

	return string(body)
}
