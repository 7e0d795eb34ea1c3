package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/repository"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// pickCommand creates the pick command: choose one of a date's games
// interactively and render it.
func (c *CLI) pickCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "pick <date>",
		Short: "Choose a game of a date interactively and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if _, err := errors.ValidateDate(args[0]); err != nil {
				return err
			}
			ctx := cmd.Context()

			repo, err := c.openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			keys, err := repo.List(ctx, args[0])
			_ = repository.Close(ctx, repo)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				printInfo("No games stored for %s", args[0])
				return nil
			}

			final, err := tea.NewProgram(NewGameListModel(keys), tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("game picker: %w", err)
			}
			picked := final.(GameListModel).Selected
			if picked == nil {
				return nil
			}
			opts.gameNumber = picked.GameNumber
			return c.runRender(ctx, cfg, []string{picked.Date, picked.Away, picked.Home}, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	opts.addFlags(cmd)

	return cmd
}

// =============================================================================
// GameListModel - Interactive game selection
// =============================================================================

// GameListModel is the bubbletea model for interactive game selection.
type GameListModel struct {
	Keys     []repository.Key
	Cursor   int
	Selected *repository.Key
	Height   int
	Offset   int
}

// NewGameListModel creates a new game list model.
func NewGameListModel(keys []repository.Key) GameListModel {
	return GameListModel{Keys: keys, Height: 15}
}

func (m GameListModel) Init() tea.Cmd {
	return nil
}

func (m GameListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Keys)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			key := m.Keys[m.Cursor]
			m.Selected = &key
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m GameListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Game"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Keys))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		k := m.Keys[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, k.Away, "@", k.Home, strconv.Itoa(k.GameNumber)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Away", "", "Home", "Game").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Keys))))

	return b.String()
}
