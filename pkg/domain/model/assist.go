package model

// ChatExchange is one completed question and answer pair of an assistant
// conversation. The client replays recent exchanges with each request; the
// assistant only considers the most recent ones.
type ChatExchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
