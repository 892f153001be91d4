package controller

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jardellitieri/placar-magico/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// VoiceCommand is the result of matching a transcribed phrase: the event to
// record and the roster player it applies to.
type VoiceCommand struct {
	Kind       model.EventKind
	PlayerID   string
	PlayerName string
}

var ErrUnrecognizedCommand = errors.New("voice command not recognized")

// commandPatterns are tried in order per event kind. The capture group is the
// spoken player name. Phrasings follow how the club actually dictates events:
// "gol do Rafael", "Rafael fez gol", "assistencia do Pedro", and so on.
var commandPatterns = []struct {
	kind     model.EventKind
	patterns []*regexp.Regexp
}{
	{model.EventOwnGoal, []*regexp.Regexp{
		regexp.MustCompile(`^(?:adicionar |add |marcar )?gol contra (?:do |da |de )(?:jogador )?(.+)$`),
		regexp.MustCompile(`^(.+?) (?:fez|marcou) gol contra$`),
	}},
	{model.EventGoalConceded, []*regexp.Regexp{
		regexp.MustCompile(`^(?:adicionar |add )?gol sofrido (?:do |da |de )(?:goleiro )?(.+)$`),
		regexp.MustCompile(`^(.+?) sofreu (?:um )?gol$`),
	}},
	{model.EventGoal, []*regexp.Regexp{
		regexp.MustCompile(`^(?:adicionar |add |marcar )?(?:um )?gol (?:do |da |de )(?:jogador )?(.+)$`),
		regexp.MustCompile(`^(.+?) (?:fez|marcou) (?:um )?gol$`),
	}},
	{model.EventAssist, []*regexp.Regexp{
		regexp.MustCompile(`^(?:adicionar |add )?(?:uma )?assistencia (?:do |da |de )(?:jogador )?(.+)$`),
		regexp.MustCompile(`^(.+?) (?:deu|fez) (?:uma )?assistencia$`),
	}},
}

func (c *controller) ParseVoiceCommand(ctx context.Context, text string) (*VoiceCommand, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}

	normalized := normalizeSpeech(text)
	for _, group := range commandPatterns {
		for _, pattern := range group.patterns {
			m := pattern.FindStringSubmatch(normalized)
			if m == nil {
				continue
			}
			if p := bestPlayerMatch(m[1], players); p != nil {
				return &VoiceCommand{Kind: group.kind, PlayerID: p.ID, PlayerName: p.Name}, nil
			}
		}
	}
	return nil, ErrUnrecognizedCommand
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeSpeech(s string) string {
	out, _, err := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

// bestPlayerMatch resolves a spoken name to a roster player: exact match
// first, then substring containment either way, then a first-letters fuzzy
// pass over individual name words.
func bestPlayerMatch(spoken string, players []model.Player) *model.Player {
	spoken = normalizeSpeech(spoken)

	for i, p := range players {
		if normalizeSpeech(p.Name) == spoken {
			return &players[i]
		}
	}
	for i, p := range players {
		if strings.Contains(normalizeSpeech(p.Name), spoken) {
			return &players[i]
		}
	}
	for i, p := range players {
		if strings.Contains(spoken, normalizeSpeech(p.Name)) {
			return &players[i]
		}
	}

	spokenWords := strings.Fields(spoken)
	for i, p := range players {
		nameWords := strings.Fields(normalizeSpeech(p.Name))
		for _, sw := range spokenWords {
			for _, nw := range nameWords {
				if strings.HasPrefix(nw, sw) || strings.HasPrefix(sw, nw) {
					return &players[i]
				}
			}
		}
	}
	return nil
}
