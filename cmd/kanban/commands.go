package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/JheyDev/Kanban/internal/board"
	"github.com/JheyDev/Kanban/internal/config"
	"github.com/JheyDev/Kanban/internal/model"
	"github.com/JheyDev/Kanban/internal/server"
	"github.com/JheyDev/Kanban/internal/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const dueLayout = "2006-01-02 15:04"

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

type cli struct {
	cfg *config.Config
}

// withApp opens the board for the duration of fn.
func (c *cli) withApp(cmd *cobra.Command, fn func(*server.App) error) error {
	app, err := server.OpenApp(cmd.Context(), c.cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := server.Init(c.cfg)
			if err != nil {
				return err
			}
			s.Run()
			return nil
		},
	}
}

func (c *cli) boardCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *server.App) error {
				fmt.Fprintln(cmd.OutOrStdout(), view.Text(app.Layout.Snapshot(), width))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 28, "Column width")

	return cmd
}

// taskFlags binds the task form fields to command flags.
type taskFlags struct {
	title, description, taskType, urgency, status string
	due, responsible, observation, reporter       string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Title")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Description")
	cmd.Flags().StringVar(&f.taskType, "type", "", "Type (bug, improvement, new-feature, refactor)")
	cmd.Flags().StringVarP(&f.urgency, "urgency", "u", "", "Urgency (high, medium, low)")
	cmd.Flags().StringVarP(&f.status, "status", "s", "", "Column")
	cmd.Flags().StringVar(&f.due, "due", "", "Estimated due date, \""+dueLayout+"\" local time, empty to clear")
	cmd.Flags().StringVarP(&f.responsible, "responsible", "r", "", "Responsible person")
	cmd.Flags().StringVar(&f.observation, "observation", "", "Observation")
	cmd.Flags().StringVar(&f.reporter, "reporter", "", "Reporter name")
}

// apply copies the flags the user actually set onto form.
func (f *taskFlags) apply(cmd *cobra.Command, form *board.TaskForm) error {
	set := cmd.Flags().Changed
	if set("title") {
		form.Title = f.title
	}
	if set("description") {
		form.Description = f.description
	}
	if set("type") {
		form.Type = model.TaskType(f.taskType)
	}
	if set("urgency") {
		form.Urgency = model.Urgency(f.urgency)
	}
	if set("status") {
		form.Status = model.Status(f.status)
	}
	if set("due") {
		form.EstimatedDue = nil
		if f.due != "" {
			due, err := time.ParseInLocation(dueLayout, f.due, time.Local)
			if err != nil {
				return fmt.Errorf("invalid due date %q: %w", f.due, err)
			}
			form.EstimatedDue = &due
		}
	}
	if set("responsible") {
		form.Responsible = f.responsible
	}
	if set("observation") {
		form.Observation = f.observation
	}
	if set("reporter") {
		form.ReporterName = f.reporter
	}
	return nil
}

func formFromTask(t model.Task) board.TaskForm {
	return board.TaskForm{
		Title:        t.Title,
		Description:  t.Description,
		Type:         t.Type,
		Urgency:      t.Urgency,
		Status:       t.Status,
		EstimatedDue: t.EstimatedDue,
		Responsible:  t.Responsible,
		Observation:  t.Observation,
		ReporterName: t.ReporterName,
	}
}

func (c *cli) addCmd() *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var form board.TaskForm
			if err := flags.apply(cmd, &form); err != nil {
				return err
			}
			return c.withApp(cmd, func(app *server.App) error {
				res, err := app.Controller.Dispatch(cmd.Context(), board.CreateIntent{Form: form})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✅ Created "+res.Task.ID))
				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a task; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *server.App) error {
				task, err := app.Controller.Task(args[0])
				if err != nil {
					return err
				}
				form := formFromTask(task)
				if err := flags.apply(cmd, &form); err != nil {
					return err
				}
				res, err := app.Controller.Dispatch(cmd.Context(), board.EditIntent{TaskID: task.ID, Form: form})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✅ Updated "+res.Task.ID))
				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *cli) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [id] [column]",
		Short: "Move a task to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			column, ok := model.ParseStatus(args[1])
			if !ok {
				return fmt.Errorf("%w: %q", board.ErrUnknownColumn, args[1])
			}
			return c.withApp(cmd, func(app *server.App) error {
				res, err := app.Controller.Dispatch(cmd.Context(), board.MoveIntent{TaskID: args[0], Column: column})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("✅ %s is now in %s", res.Task.ID, res.Task.Status.Label())))
				return nil
			})
		},
	}
}

func (c *cli) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [id]",
		Short: "Mark a task done, or reopen it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *server.App) error {
				res, err := app.Controller.Dispatch(cmd.Context(), board.ToggleCompleteIntent{TaskID: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("✅ %s is now in %s", res.Task.ID, res.Task.Status.Label())))
				return nil
			})
		},
	}
}

func (c *cli) rmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a task and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			confirmed := yes
			if !confirmed {
				fmt.Fprintf(cmd.OutOrStdout(), "Remove %s and all of its comments? [y/N] ", id)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				confirmed = answer == "y" || answer == "yes"
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Cancelled"))
				return nil
			}

			return c.withApp(cmd, func(app *server.App) error {
				res, err := app.Controller.Dispatch(cmd.Context(), board.RemoveIntent{TaskID: id, Confirmed: true})
				if err != nil {
					return err
				}
				if !res.Removed {
					fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("⚠️  No task "+id))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✅ Removed "+id))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (c *cli) commentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment [id] [text...]",
		Short: "Comment on a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *server.App) error {
				res, err := app.Controller.Dispatch(cmd.Context(), board.AddCommentIntent{
					TaskID: args[0],
					Text:   strings.Join(args[1:], " "),
				})
				if err != nil {
					return err
				}
				if res.Comment == nil {
					fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Empty comment ignored"))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✅ Added "+res.Comment.ID))
				return nil
			})
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a task with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, func(app *server.App) error {
				if err := app.Controller.OpenDetails(args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), view.DetailsText(app.Layout.Snapshot()))
				return nil
			})
		},
	}
}
