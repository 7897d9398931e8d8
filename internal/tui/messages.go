package tui

import (
	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

type winsLoadedMsg struct {
	wins []store.Win
}

type errMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type updateAvailableMsg struct {
	version string
}
