package tui

import "github.com/0Draxy/promotronik/internal/listing"

// datasetLoadedMsg settles the one suspending step of a session. Items is
// empty, never nil, when the load failed.
type datasetLoadedMsg struct {
	items []listing.Item
}

type openFailedMsg struct {
	link string
	err  error
}
