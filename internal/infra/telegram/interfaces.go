package telegram

import "context"

type NotifierInterface interface {
	Notify(ctx context.Context, chatID, text string) error
}

var _ NotifierInterface = (*Notifier)(nil)
