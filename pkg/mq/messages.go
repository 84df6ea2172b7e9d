package mq

// Topics consumed by downstream workers.
const (
	TopicMediaCreate  = "media/create"
	TopicDishCollect  = "dish/collect"
	TopicTasteCreate  = "taste/create"
	TopicTasteAddDish = "taste/addDish"
)

// Collect states carried by dish/collect messages.
const (
	CollectStateCollect   = 1
	CollectStateUncollect = 2
)

type (
	MediaCreateMessage struct {
		MediaID string `json:"mediaId"`
		Type    string `json:"type"`
		URL     string `json:"url"`
		Source  string `json:"source"`
		Width   int    `json:"width,omitempty"`
		Height  int    `json:"height,omitempty"`
	}

	DishCollectMessage struct {
		UserID string `json:"userId"`
		DishID string `json:"dishId"`
		State  int    `json:"state"`
	}

	// TasteCreateMessage describes the resulting taste after any lifecycle
	// change. Deletes reuse this topic with a NOT_RECOMMEND sentinel state.
	TasteCreateMessage struct {
		ID             string   `json:"id"`
		UserID         string   `json:"userId"`
		DishID         string   `json:"dishId"`
		Comment        string   `json:"comment"`
		RecommendState int      `json:"recommendState"`
		MediaIDs       []string `json:"mediaIds,omitempty"`
	}

	TasteAddDishMessage struct {
		ID             string   `json:"id"`
		UserID         string   `json:"userId"`
		MerchantID     string   `json:"merchantID"`
		Name           string   `json:"name"`
		Price          int      `json:"price,omitempty"`
		MediaIDs       []string `json:"mediaIds,omitempty"`
		Description    string   `json:"description,omitempty"`
		Characteristic string   `json:"characteristic,omitempty"`
	}
)
