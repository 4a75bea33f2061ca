package discord

import (
	"log"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
)

var (
	bracketMsgIDs sync.Map // channelID -> messageID
	chLocks       sync.Map // channelID -> *sync.Mutex
)

func SetBracketMessageID(channelID, messageID string) {
	if channelID != "" && messageID != "" {
		bracketMsgIDs.Store(channelID, messageID)
	}
}

func getBracketMessageID(channelID string) (string, bool) {
	v, ok := bracketMsgIDs.Load(channelID)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func chanLock(channelID string) *sync.Mutex {
	v, _ := chLocks.LoadOrStore(channelID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Heurística mínima para detectar "nuestro" mensaje de UI existente.
// Usa el título del embed del bracket (ajústalo si lo cambias).
func looksLikeBracketUI(m *discordgo.Message) bool {
	if len(m.Embeds) == 0 {
		return false
	}
	t := m.Embeds[0].Title
	return strings.Contains(strings.ToLower(t), "bracket") // <-- tu marca
}

// Busca un mensaje anterior de UI en el canal.
func findExistingBracketMessage(s *discordgo.Session, channelID string) (string, bool) {
	msgs, err := s.ChannelMessages(channelID, 50, "", "", "")
	if err != nil {
		return "", false
	}

	botID := ""
	if s.State != nil && s.State.User != nil {
		botID = s.State.User.ID
	}
	for _, m := range msgs {
		if m == nil || len(m.Embeds) == 0 {
			continue
		}
		if botID != "" && (m.Author == nil || m.Author.ID != botID) {
			continue
		}
		if looksLikeBracketUI(m) {
			return m.ID, true
		}
	}
	return "", false
}

// PublishOrEditBracketMessage: protegido por lock por canal + doble chequeo.
// - Si tenemos ID: edita.
// - Si no tenemos, intenta recuperar del historial y edita.
// - Si no existe, crea uno nuevo y recuerda su ID.
func PublishOrEditBracketMessage(s *discordgo.Session, channelID string, emb *discordgo.MessageEmbed, comps []discordgo.MessageComponent) error {
	mu := chanLock(channelID)
	mu.Lock()
	defer mu.Unlock()

	if _, ok := getBracketMessageID(channelID); ok {
		log.Printf("[publisher] EDIT (remembered) ch=%s", channelID)
		return EditBracketMessage(s, channelID, emb, comps)
	}
	if id, ok := findExistingBracketMessage(s, channelID); ok {
		log.Printf("[publisher] EDIT (rehydrated id=%s) ch=%s", id, channelID)
		SetBracketMessageID(channelID, id)
		return EditBracketMessage(s, channelID, emb, comps)
	}
	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{emb}, Components: comps})
	if err != nil {
		return err
	}
	if msg != nil {
		log.Printf("[publisher] CREATE id=%s ch=%s", msg.ID, channelID)
		SetBracketMessageID(channelID, msg.ID)
	}
	return nil
}

func EditBracketMessage(s *discordgo.Session, channelID string, emb *discordgo.MessageEmbed, comps []discordgo.MessageComponent) error {
	msgID, ok := getBracketMessageID(channelID)
	if !ok {
		return nil // no recordado aún (lo resuelve PublishOrEdit)
	}
	embeds := []*discordgo.MessageEmbed{emb}
	compsCopy := comps
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         msgID,
		Embeds:     &embeds,
		Components: &compsCopy,
	})
	if err != nil {
		// Si el mensaje ya no existe (10008), olvidamos el ID y dejamos que PublishOrEdit lo recree
		if re, ok := err.(*discordgo.RESTError); ok && re.Message != nil && re.Message.Code == 10008 {
			bracketMsgIDs.Delete(channelID)
			return PublishOrEditBracketMessage(s, channelID, emb, comps)
		}
	}
	return err
}
