package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/nolanpeet/stakehouse/internal/models"
	"github.com/nolanpeet/stakehouse/internal/services/messaging"
)

// Announcer posts settlement and cancellation summaries to a Discord
// channel. It is strictly fire-and-forget: a failed announcement is logged
// and never blocks or fails the settlement that triggered it.
type Announcer struct {
	session   *discordgo.Session
	messaging messaging.Service
	config    *Config
}

// Config holds the configuration for the announcer
type Config struct {
	// Discord bot token
	Token string

	// ChannelID is the channel announcements are posted to
	ChannelID string

	// MessagingService renders the announcement copy
	MessagingService messaging.Service
}

// New creates a new Discord announcer
func New(cfg *Config) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &Announcer{
		session:   session,
		messaging: cfg.MessagingService,
		config:    cfg,
	}, nil
}

// Start opens the Discord connection
func (a *Announcer) Start() error {
	if err := a.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Discord announcer connected")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (a *Announcer) Stop() error {
	return a.session.Close()
}

// AnnounceSettlement posts a settlement summary. It returns immediately;
// the post happens in the background.
func (a *Announcer) AnnounceSettlement(ctx context.Context, kind models.SessionKind, record *models.SettlementRecord) {
	if record == nil {
		return
	}

	go func() {
		rendered, err := a.messaging.GetSettlementMessage(ctx, &messaging.GetSettlementMessageInput{
			Record: record,
			Kind:   kind,
		})
		if err != nil {
			log.Printf("Failed to render settlement announcement for session %s: %v", record.SessionID, err)
			return
		}

		a.post(&discordgo.MessageEmbed{
			Title:       rendered.Title,
			Description: rendered.Message,
			Color:       0x00ff00, // Green color
			Footer: &discordgo.MessageEmbedFooter{
				Text: "session " + record.SessionID,
			},
		})
	}()
}

// AnnounceCancellation posts a cancellation summary. It returns
// immediately; the post happens in the background.
func (a *Announcer) AnnounceCancellation(ctx context.Context, kind models.SessionKind, record *models.CancellationRecord) {
	if record == nil {
		return
	}

	go func() {
		rendered, err := a.messaging.GetCancellationMessage(ctx, &messaging.GetCancellationMessageInput{
			Record: record,
			Kind:   kind,
		})
		if err != nil {
			log.Printf("Failed to render cancellation announcement for session %s: %v", record.SessionID, err)
			return
		}

		a.post(&discordgo.MessageEmbed{
			Title:       rendered.Title,
			Description: rendered.Message,
			Color:       0xffcc00, // Amber color
			Footer: &discordgo.MessageEmbedFooter{
				Text: "session " + record.SessionID,
			},
		})
	}()
}

func (a *Announcer) post(embed *discordgo.MessageEmbed) {
	if _, err := a.session.ChannelMessageSendEmbed(a.config.ChannelID, embed); err != nil {
		log.Printf("Failed to post announcement: %v", err)
	}
}
