package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

type phrasebook struct {
	title       string
	question    string
	correct     string
	wrong       string
	explanation string
}

var phrasebooks = map[domain.Language]phrasebook{
	domain.LanguageEnglish: {
		title:       "%s #%d",
		question:    "Which statement about %s is true? (%s)",
		correct:     "Fact %d about %s",
		wrong:       "Myth %d about %s",
		explanation: "Only fact %d is an accurate statement about %s.",
	},
	domain.LanguageSpanish: {
		title:       "%s n.º %d",
		question:    "¿Qué afirmación sobre %s es verdadera? (%s)",
		correct:     "Dato %d sobre %s",
		wrong:       "Mito %d sobre %s",
		explanation: "Solo el dato %d es correcto sobre %s.",
	},
}

// GenerateGames appends req.Duration placeholder games to the folder. The
// stub produces deterministic questions instead of calling a model.
func (s *Store) GenerateGames(_ context.Context, userID, folderID string, req request.GenerateGamesRequest) ([]domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.ownedFolder(userID, folderID)
	if err != nil {
		return nil, err
	}

	pb, ok := phrasebooks[req.Language]
	if !ok {
		pb = phrasebooks[domain.LanguageEnglish]
	}
	topic := f.Prompt
	if strings.TrimSpace(topic) == "" {
		topic = f.Title
	}

	games := make([]domain.Game, 0, req.Duration)
	for i := 0; i < req.Duration; i++ {
		order := len(f.GameIDs) + 1
		n := order
		options := []string{
			fmt.Sprintf(pb.correct, n, topic),
			fmt.Sprintf(pb.wrong, n, topic),
			fmt.Sprintf(pb.wrong, n+1, topic),
			fmt.Sprintf(pb.wrong, n+2, topic),
		}
		s.rand.Shuffle(len(options), func(a, b int) { options[a], options[b] = options[b], options[a] })

		g := &domain.Game{
			ID:            uuid.NewString(),
			Order:         order,
			Title:         fmt.Sprintf(pb.title, f.Title, order),
			Question:      fmt.Sprintf(pb.question, topic, req.Difficulty),
			Options:       options,
			CorrectAnswer: fmt.Sprintf(pb.correct, n, topic),
			Explanation:   fmt.Sprintf(pb.explanation, n, topic),
			FolderID:      f.ID,
			Topic:         topic,
			Tags:          []string{string(req.Difficulty), string(req.Language)},
			CreatedAt:     s.now(),
			CreatedBy:     userID,
		}
		s.games[g.ID] = g
		f.GameIDs = append(f.GameIDs, g.ID)
		games = append(games, *g)
	}

	return games, nil
}

func (s *Store) GamesByFolder(_ context.Context, folderID string) ([]domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.folders[folderID]
	if !ok {
		return nil, ErrFolderNotFound
	}

	games := make([]domain.Game, 0, len(f.GameIDs))
	for _, id := range f.GameIDs {
		if g, ok := s.games[id]; ok {
			games = append(games, *g)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Order < games[j].Order })

	return games, nil
}

func (s *Store) FindGame(_ context.Context, gameID string) (domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return domain.Game{}, ErrGameNotFound
	}

	return *g, nil
}
