package handler

import (
	"fmt"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"shadowroll-bot/internal/config"
	"shadowroll-bot/internal/roller"
	"shadowroll-bot/internal/session"
)

// EditionHandler handles the /ed command for showing and changing the
// edition a user or chat rolls under.
type EditionHandler struct {
	cfg      *config.Config
	editions *session.Store
}

// NewEditionHandler creates a new EditionHandler.
func NewEditionHandler(cfg *config.Config, editions *session.Store) *EditionHandler {
	return &EditionHandler{
		cfg:      cfg,
		editions: editions,
	}
}

// HandleEdition handles /ed. Without arguments it reports the edition in
// effect; with one it records a new preference — for the sender in private
// chats, for the chat in groups. Changing a group's edition is restricted to
// configured admins when an admin list exists.
func (h *EditionHandler) HandleEdition(c tele.Context) error {
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}
	private := chat.Type == tele.ChatPrivate

	args := c.Args()
	if len(args) == 0 {
		current := h.editions.Resolve(sender.ID, chat.ID, private)
		return c.Reply(fmt.Sprintf(
			"🎲 Rolling %s here.\nUse /ed <edition> to change it. Allowed: SR4, SR5, SR6 (or drop the SR prefix).",
			current,
		))
	}

	ed, ok := roller.ParseEdition(args[0])
	if !ok {
		return c.Reply("Usage: /ed <edition>\nAllowed: SR4, SR5, SR6 (or drop the SR prefix)")
	}

	if private {
		h.editions.SetUser(sender.ID, ed)
	} else {
		if len(h.cfg.Admin.IDs) > 0 && !h.cfg.IsAdmin(sender.ID) {
			return c.Reply("❌ Only an admin can change this chat's edition.")
		}
		h.editions.SetChat(chat.ID, ed)
	}

	log.Info().
		Int64("user_id", sender.ID).
		Int64("chat_id", chat.ID).
		Bool("private", private).
		Stringer("edition", ed).
		Msg("Edition preference updated")
	return c.Reply(fmt.Sprintf("✅ Rolling %s from now on.", ed))
}
