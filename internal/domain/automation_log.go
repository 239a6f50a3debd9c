package domain

import "time"

// AutomationLogLimit é a quantidade de eventos exibidos no painel
const AutomationLogLimit = 10

type AutomationLogEntry struct {
	EventType *string    `json:"event_type"`
	Message   *string    `json:"message"`
	CreatedAt *time.Time `json:"created_at"`
}

type AutomationLogView struct {
	Entries []*AutomationLogItem `json:"entries"`
	Count   int                  `json:"count"`
}

type AutomationLogItem struct {
	EventType string `json:"event_type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
