// Package handler provides Telegram bot command handlers.
package handler

import (
	"errors"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"shadowroll-bot/internal/render"
	"shadowroll-bot/internal/roller"
	"shadowroll-bot/internal/session"
)

// RollHandler handles the /r dice roll command.
type RollHandler struct {
	roller   *roller.Roller
	editions *session.Store
}

// NewRollHandler creates a new RollHandler.
func NewRollHandler(r *roller.Roller, editions *session.Store) *RollHandler {
	return &RollHandler{
		roller:   r,
		editions: editions,
	}
}

// HandleRoll handles the /r command: resolves the chat's edition, parses the
// arguments, rolls the pool, and replies with the rendered result. Malformed
// commands get the usage prompt instead of an error.
func (h *RollHandler) HandleRoll(c tele.Context) error {
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	ed := h.editions.Resolve(sender.ID, chat.ID, chat.Type == tele.ChatPrivate)

	reply, err := h.resolve(c.Args(), ed)
	if errors.Is(err, roller.ErrInvalidArgument) {
		log.Debug().
			Int64("user_id", sender.ID).
			Str("text", c.Text()).
			Err(err).
			Msg("Rejected roll command")
		return c.Reply(UsageText)
	}
	if err != nil {
		return err
	}

	log.Info().
		Int64("user_id", sender.ID).
		Int64("chat_id", chat.ID).
		Stringer("edition", ed).
		Msg("Rolled dice pool")
	return c.Reply(reply)
}

// resolve runs the parse → roll → evaluate → render pipeline for one
// command invocation.
func (h *RollHandler) resolve(tokens []string, ed roller.Edition) (string, error) {
	req, err := roller.Parse(tokens, ed)
	if err != nil {
		return "", err
	}
	waves := h.roller.Roll(req.DiceCount, req.Edge)
	res := roller.Evaluate(waves, req.Limit, req.Threshold)
	return render.Roll(ed, req, res), nil
}
