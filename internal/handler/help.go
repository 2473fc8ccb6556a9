package handler

import (
	"fmt"

	tele "gopkg.in/telebot.v3"

	"shadowroll-bot/internal/session"
)

// UsageText is the short prompt sent back for malformed /r commands.
const UsageText = "Usage: /r <dice>[e] [limit] [threshold] [comment]"

// HelpText documents the roll command, the per-edition threshold keywords,
// and a few examples.
const HelpText = UsageText + "\n\n" +
	"- <dice>: Number of dice to roll (1-99)\n" +
	"- [e]: Roll with edge (exploding dice) flag\n" +
	"- [limit]: (SR5 only) Optional limit on hits\n" +
	"- [threshold]: Optional threshold as number (with 't' prefix for SR5) or keyword (SR4/SR5 only)\n" +
	"- [comment]: Optional description\n\n" +
	"SR4 threshold keywords:\n" +
	"- Easy (ea) - 1\n" +
	"- Average (av) - 2\n" +
	"- Hard (ha) - 4\n" +
	"- Extreme (ex) - 6\n\n" +
	"SR5 threshold keywords:\n" +
	"- Easy (ea) - 1\n" +
	"- Average (av) - 2\n" +
	"- Hard (ha) - 4\n" +
	"- Very Hard (vh) - 6\n" +
	"- Extreme (ex) - 8\n\n" +
	"Examples:\n" +
	"/r 10\n" +
	"/r 10 5\n" +
	"/r 12 6 Hard\n" +
	"/r 8e 4 t2 Sneaking in (with Edge!)"

// HelpHandler handles /help and /start.
type HelpHandler struct {
	editions *session.Store
}

// NewHelpHandler creates a new HelpHandler.
func NewHelpHandler(editions *session.Store) *HelpHandler {
	return &HelpHandler{editions: editions}
}

// HandleHelp handles the /help command.
func (h *HelpHandler) HandleHelp(c tele.Context) error {
	return c.Reply(HelpText)
}

// HandleStart handles the /start command with a short greeting that names
// the edition in effect.
func (h *HelpHandler) HandleStart(c tele.Context) error {
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	ed := h.editions.Resolve(sender.ID, chat.ID, chat.Type == tele.ChatPrivate)
	return c.Reply(fmt.Sprintf(
		"🎲 Ready to roll! This chat is set to %s.\nUse /r to roll, /ed to change edition, /help for the full syntax.",
		ed,
	))
}
