// Package discord adapts announcements to Discord: embeds, the channel
// sender, chat commands and the gateway session.
package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/01speed1/skg-bot/internal/notifications"
)

// EmbedFor converts an announcement into a Discord embed.
func EmbedFor(a notifications.Announcement) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		Color:       a.Color,
	}
	for _, f := range a.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if a.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: a.ImageURL}
	}
	if a.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: a.ThumbnailURL}
	}
	return embed
}

// MessageFor builds the outbound message. Only the announcement's own role
// may be pinged; any other mention in the content is suppressed.
func MessageFor(a notifications.Announcement) *discordgo.MessageSend {
	allowed := &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
	if a.MentionRoleID != "" {
		allowed.Roles = []string{a.MentionRoleID}
	}
	return &discordgo.MessageSend{
		Content:         a.Content,
		Embeds:          []*discordgo.MessageEmbed{EmbedFor(a)},
		AllowedMentions: allowed,
	}
}
