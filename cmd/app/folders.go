package app

import (
	"github.com/spf13/cobra"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/service"
)

func (a *App) foldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"courses"},
		Short:   "Manage your courses",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.Session.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			return a.requireMain()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your courses",
			RunE: func(cmd *cobra.Command, _ []string) error {
				folders, err := a.Folders.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(folders) == 0 {
					a.printf("No courses yet. Create one with `quizcourse course --title ...`.\n")
				}
				for _, f := range folders {
					a.printf("%s  %s (%d games)\n", f.ID, f.Title, len(f.GameIDs))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show FOLDER_ID",
			Short: "Show a course, its games and your progress",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fg, err := a.Folders.Open(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				progress, err := a.Games.Progress(cmd.Context(), fg.Folder.ID)
				if err != nil {
					return err
				}
				a.printFolder(fg, progress)
				return nil
			},
		},
		a.folderCreateCommand(),
		&cobra.Command{
			Use:   "rename FOLDER_ID TITLE",
			Short: "Rename a course",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				folder, err := a.Folders.Rename(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				a.printf("Renamed to %q.\n", folder.Title)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete FOLDER_ID",
			Short: "Delete a course",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Folders.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				a.printf("Deleted.\n")
				return nil
			},
		},
		a.generateCommand(),
	)

	return cmd
}

func (a *App) folderCreateCommand() *cobra.Command {
	var req request.CreateFolderRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			folder, err := a.Folders.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.printf("Created %s (%s).\n", folder.Title, folder.ID)
			return nil
		},
	}
	addFolderFlags(cmd, &req)

	return cmd
}

func (a *App) generateCommand() *cobra.Command {
	var opts service.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate FOLDER_ID",
		Short: "Generate more games for a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Folders.GenerateGames(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			a.printf("%d new games ready.\n", len(resp.Games))
			return nil
		},
	}
	addGenerateFlags(cmd, &opts)

	return cmd
}

func (a *App) courseCommand() *cobra.Command {
	var (
		req  request.CreateFolderRequest
		opts service.GenerateOptions
	)

	cmd := &cobra.Command{
		Use:   "course",
		Short: "Create a course and generate its games",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireMain(); err != nil {
				return err
			}
			if req.Prompt == "" {
				req.Prompt = req.Title
			}
			fg, err := a.Folders.GenerateCourse(cmd.Context(), req, opts)
			if err != nil {
				if fg.Folder.ID != "" {
					a.printf("Course %s was created but its games could not be generated.\n", fg.Folder.ID)
				}
				return err
			}
			a.printf("Course %q is ready with %d games (%s).\n", fg.Folder.Title, len(fg.Games), fg.Folder.ID)
			return nil
		},
	}
	addFolderFlags(cmd, &req)
	addGenerateFlags(cmd, &opts)

	return cmd
}

func (a *App) randomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random course to play",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireMain(); err != nil {
				return err
			}
			fg, err := a.Folders.Random(cmd.Context())
			if err != nil {
				return err
			}
			a.printFolder(fg, domain.NewProgress(fg.Folder.ID))
			a.printf("Play it with `quizcourse play %s`.\n", fg.Folder.ID)
			return nil
		},
	}
}

func (a *App) printFolder(fg domain.FolderWithGames, progress domain.Progress) {
	a.printf("%s\n", fg.Folder.Title)
	if fg.Folder.Description != "" {
		a.printf("%s\n", fg.Folder.Description)
	}
	a.printf("progress: %d%% answered, %d%% correct\n",
		progress.Percent(len(fg.Games)), progress.CorrectPercent(len(fg.Games)))
	for _, g := range fg.Games {
		mark := " "
		if e, ok := progress.Entries[g.ID]; ok {
			mark = "✗"
			if e.Correct {
				mark = "✓"
			}
		}
		a.printf("  [%s] %s  %s\n", mark, g.ID, g.Title)
	}
}

func addFolderFlags(cmd *cobra.Command, req *request.CreateFolderRequest) {
	cmd.Flags().StringVar(&req.Title, "title", "", "course title")
	cmd.Flags().StringVar(&req.Description, "description", "", "short description")
	cmd.Flags().StringVar(&req.Prompt, "prompt", "", "what the games should be about")
}

func addGenerateFlags(cmd *cobra.Command, opts *service.GenerateOptions) {
	cmd.Flags().IntVar(&opts.Duration, "duration", domain.DefaultGenerationDuration, "5, 10 or 15")
	cmd.Flags().StringVar((*string)(&opts.Difficulty), "difficulty", string(domain.DifficultySame), "same, easier or harder")
	cmd.Flags().StringVar((*string)(&opts.Language), "language", "", "en or es, defaults to the configured language")
}
