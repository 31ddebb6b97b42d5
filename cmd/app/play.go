package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quizcourse/quizcourse/internal/service"
)

var errNoGames = errors.New("this course has no games yet")

func (a *App) playCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "play FOLDER_ID",
		Short: "Play the games of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireMain(); err != nil {
				return err
			}

			fg, err := a.Folders.Open(ctx, args[0])
			if err != nil {
				return err
			}
			if len(fg.Games) == 0 {
				return errNoGames
			}
			progress, err := a.Games.Progress(ctx, fg.Folder.ID)
			if err != nil {
				return err
			}

			a.printf("%s\n\n", fg.Folder.Title)
			for _, game := range fg.Games {
				if _, done := progress.Entries[game.ID]; done && !all {
					continue
				}
				if _, err := a.Games.StartPlay(ctx); err != nil {
					return err
				}

				a.printf("%s\n", game.Question)
				for i, opt := range game.Options {
					a.printf("  %d. %s\n", i+1, opt)
				}
				n, err := a.promptChoice("Your answer: ", len(game.Options))
				if err != nil {
					return err
				}

				res, err := a.Games.Answer(ctx, game, game.Options[n])
				if err != nil && !errors.Is(err, service.ErrSyncFailed) {
					return err
				}
				if err != nil {
					zap.L().Warn("answer not synced", zap.Error(err))
				}
				if res.Correct {
					a.printf("Correct!\n")
				} else {
					a.printf("Not quite. The answer was %q.\n", res.CorrectAnswer)
				}
				if res.Explanation != "" {
					a.printf("%s\n", res.Explanation)
				}
				a.printf("Energy %s  XP %d\n\n", battery(res.Energy), res.XP)
			}

			progress, err = a.Games.Progress(ctx, fg.Folder.ID)
			if err != nil {
				return err
			}
			a.printf("Course progress: %d%% answered, %d%% correct\n",
				progress.Percent(len(fg.Games)), progress.CorrectPercent(len(fg.Games)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "replay games that were already answered")

	return cmd
}

func (a *App) progressCommand() *cobra.Command {
	var sync bool

	cmd := &cobra.Command{
		Use:   "progress FOLDER_ID",
		Short: "Show your progress in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireMain(); err != nil {
				return err
			}

			games, err := a.Games.ByFolder(ctx, args[0])
			if err != nil {
				return err
			}
			progress, err := a.Games.Progress(ctx, args[0])
			if sync {
				progress, err = a.Games.SyncProgress(ctx, args[0])
			}
			if err != nil {
				return err
			}

			a.printf("%d/%d answered (%d%%), %d correct (%d%%)\n",
				progress.Answered(), len(games), progress.Percent(len(games)),
				progress.Correct(), progress.CorrectPercent(len(games)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&sync, "sync", false, "merge the progress stored on the server first")

	return cmd
}

func (a *App) prompt(label string) (string, error) {
	a.printf("%s", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("a.in.ReadString -> %w", err)
	}

	return strings.TrimSpace(line), nil
}

// promptChoice reads a 1-based choice and returns it 0-based.
func (a *App) promptChoice(label string, n int) (int, error) {
	for {
		line, err := a.prompt(label)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= n {
			return choice - 1, nil
		}
		a.printf("Please enter a number between 1 and %d.\n", n)
	}
}
