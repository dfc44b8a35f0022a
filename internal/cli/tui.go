package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/permtower/pkg/group"
	"github.com/matzehuels/permtower/pkg/observability"
	"github.com/matzehuels/permtower/pkg/perm"
)

// =============================================================================
// Messages
// =============================================================================

type saturationStartMsg struct {
	degree     int
	generators int
}

type saturationRoundMsg struct {
	round      int
	known      int
	discovered int
}

type saturationDoneMsg struct {
	closure  *group.Subgroup
	rounds   int
	duration time.Duration
	err      error
}

// =============================================================================
// Model
// =============================================================================

// saturationModel renders the fixed-point saturation round by round.
type saturationModel struct {
	degree   int
	rounds   []saturationRoundMsg
	done     bool
	order    int
	duration time.Duration
	err      error
	canceled bool
}

func (m saturationModel) Init() tea.Cmd { return nil }

func (m saturationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		}
	case saturationStartMsg:
		m.degree = msg.degree
	case saturationRoundMsg:
		m.rounds = append(m.rounds, msg)
	case saturationDoneMsg:
		m.done = true
		m.err = msg.err
		m.duration = msg.duration
		if msg.closure != nil {
			m.order = msg.closure.Order()
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m saturationModel) View() string {
	s := StyleTitle.Render("normal closure") + "\n"
	for _, r := range m.rounds {
		s += fmt.Sprintf("  round %s  %s known, %s discovered\n",
			StyleNumber.Render(fmt.Sprintf("%d", r.round)),
			StyleValue.Render(fmt.Sprintf("%d", r.known)),
			StyleHighlight.Render(fmt.Sprintf("%d", r.discovered)))
	}
	switch {
	case m.done && m.err != nil:
		s += styleIconError.Render(iconError) + " " + m.err.Error() + "\n"
	case m.done:
		s += styleIconSuccess.Render(iconSuccess) + fmt.Sprintf(" saturated: order %s in %s\n",
			StyleNumber.Render(fmt.Sprintf("%d", m.order)),
			StyleDim.Render(m.duration.Round(time.Millisecond).String()))
	default:
		s += StyleDim.Render("  saturating... (q to cancel)") + "\n"
	}
	return s
}

// =============================================================================
// Hooks Bridge
// =============================================================================

// teaClosureHooks forwards saturation events to a running bubbletea program
// and delegates to an inner hook set for logging.
type teaClosureHooks struct {
	program *tea.Program
	inner   observability.ClosureHooks
}

func (h *teaClosureHooks) OnSaturationStart(ctx context.Context, degree, generators int) {
	h.inner.OnSaturationStart(ctx, degree, generators)
	h.program.Send(saturationStartMsg{degree: degree, generators: generators})
}

func (h *teaClosureHooks) OnSaturationRound(ctx context.Context, round, known, discovered int) {
	h.inner.OnSaturationRound(ctx, round, known, discovered)
	h.program.Send(saturationRoundMsg{round: round, known: known, discovered: discovered})
}

func (h *teaClosureHooks) OnSaturationComplete(ctx context.Context, degree, order, rounds int, duration time.Duration, err error) {
	h.inner.OnSaturationComplete(ctx, degree, order, rounds, duration, err)
}

// =============================================================================
// Runner
// =============================================================================

// watchSaturation runs the closure computation behind a live TUI. The
// computation itself runs in a goroutine; the program exits when it
// finishes or the user cancels.
func (c *CLI) watchSaturation(ctx context.Context, gens []perm.Permutation, ambient *group.Subgroup, counter *countingClosureHooks) (*group.Subgroup, int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(saturationModel{}, tea.WithContext(ctx))
	observability.SetClosureHooks(&teaClosureHooks{program: program, inner: counter})

	type result struct {
		closure *group.Subgroup
		err     error
	}
	resultCh := make(chan result, 1)
	go func() {
		start := time.Now()
		closure, err := group.NormalClosure(ctx, gens, ambient)
		program.Send(saturationDoneMsg{
			closure:  closure,
			rounds:   counter.rounds(),
			duration: time.Since(start),
			err:      err,
		})
		resultCh <- result{closure: closure, err: err}
	}()

	final, err := program.Run()
	if err != nil {
		cancel() // unwind the computation if the TUI died
		<-resultCh
		return nil, 0, err
	}
	if m, ok := final.(saturationModel); ok && m.canceled {
		cancel()
		<-resultCh
		return nil, 0, context.Canceled
	}

	res := <-resultCh
	if res.err != nil {
		return nil, 0, res.err
	}
	return res.closure, counter.rounds(), nil
}
