package telegram

import (
	"fmt"
	"log"
	"strings"

	"seasonal-meal-planner/internal/config"
	"seasonal-meal-planner/internal/planner"
	"seasonal-meal-planner/internal/shopping"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLen is Telegram's limit for a single text message.
const maxMessageLen = 4096

// Sender is the part of the Telegram API the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers a finished plan to one Telegram chat.
type Notifier struct {
	api    Sender
	chatID int64
}

// NewNotifier authorizes against the Bot API using the configured token.
func NewNotifier(cfg *config.Config) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)
	return NewNotifierWithSender(bot, cfg.TelegramChatID), nil
}

// NewNotifierWithSender builds a Notifier around an existing sender.
func NewNotifierWithSender(api Sender, chatID int64) *Notifier {
	return &Notifier{api: api, chatID: chatID}
}

// SendPlan posts the meals, then the grocery list, as separate messages.
func (n *Notifier) SendPlan(plan *planner.Plan, list *shopping.ShoppingList) error {
	planText, shoppingText := formatPlanMarkdownParts(plan, list)

	var messages []string
	messages = append(messages, splitMessage(planText, maxMessageLen)...)
	messages = append(messages, splitMessage(shoppingText, maxMessageLen)...)

	for i, text := range messages {
		msg := tgbotapi.NewMessage(n.chatID, text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := n.api.Send(msg); err != nil {
			return fmt.Errorf("failed to send message %d of %d: %w", i+1, len(messages), err)
		}
	}
	return nil
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func formatPlanMarkdownParts(plan *planner.Plan, list *shopping.ShoppingList) (string, string) {
	var pb strings.Builder
	pb.WriteString("🍽 *Meal Plan*\n\n")

	for _, pm := range plan.Meals {
		pb.WriteString(fmt.Sprintf("*Meal %d* (%d tries)\n", pm.Number, pm.Tries))
		for _, it := range pm.Meal.Sorted() {
			pb.WriteString(fmt.Sprintf("• %s: %s\n", escape(it.Name), escape(it.Quantity())))
		}
		pb.WriteString("\n")
	}

	var sb strings.Builder
	sb.WriteString("🛒 *Shopping List*\n\n")
	for _, item := range list.Items {
		sb.WriteString(fmt.Sprintf("• %s %s", escape(item.Ingredient.Quantity()), escape(item.Ingredient.Name)))
		if item.Count > 1 {
			sb.WriteString(fmt.Sprintf(" _(%d meals)_", item.Count))
		}
		sb.WriteString("\n")
	}

	return pb.String(), sb.String()
}

// splitMessage cuts text at line boundaries so no part exceeds limit.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var cur strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if cur.Len() > 0 && cur.Len()+len(line) > limit {
			parts = append(parts, cur.String())
			cur.Reset()
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}
