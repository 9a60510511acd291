package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"textca/internal/core"
	"textca/internal/render"
	"textca/internal/sims/elementary"
)

const (
	ruleFlag        = "rule"
	bitsFlag        = "bits"
	widthFlag       = "width"
	limitFlag       = "limit"
	generationsFlag = "generations"
	tpsFlag         = "tps"
	colorFlag       = "color"
	promptFlag      = "prompt"

	defaultGenerations = 50
)

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:    ruleFlag,
			Aliases: []string{"r"},
			Usage:   fmt.Sprintf("rule number (%d-%d, or up to %d with 5-cell neighborhoods)", elementary.MinRule, elementary.MaxRule3, elementary.MaxRule5),
			Value:   elementary.DefaultRule,
		},
		&cli.StringFlag{
			Name:    bitsFlag,
			Aliases: []string{"b"},
			Usage:   "neighborhood: 3 (8-bit rules) or 5 (32-bit rules)",
			Value:   "3",
		},
		&cli.IntFlag{
			Name:    widthFlag,
			Aliases: []string{"w"},
			Usage:   fmt.Sprintf("display width, odd, %d-%d", elementary.MinDisplayWidth, elementary.MaxDisplayWidth),
			Value:   elementary.DefaultDisplayWidth,
		},
		&cli.IntFlag{
			Name:  limitFlag,
			Usage: "bound the tracked tape to this many cells (0 tracks everything)",
		},
	}
}

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "render generations, one row per line",
		Flags: append(engineFlags(),
			&cli.IntFlag{
				Name:    generationsFlag,
				Aliases: []string{"n"},
				Usage:   "number of rows to print",
				Value:   defaultGenerations,
			},
			&cli.IntFlag{
				Name:  tpsFlag,
				Usage: "rows per second (0 prints as fast as possible)",
			},
			&cli.BoolFlag{
				Name:  colorFlag,
				Usage: "colour active cells",
			},
			&cli.BoolFlag{
				Name:  promptFlag,
				Usage: "ask for the neighborhood and rule on stdin",
			},
		),
		Action: runAction,
	}
}

func newParamsCommand() *cli.Command {
	return &cli.Command{
		Name:   "params",
		Usage:  "show the engine parameters for the given flags",
		Flags:  engineFlags(),
		Action: paramsAction,
	}
}

func newSimsCommand() *cli.Command {
	return &cli.Command{
		Name:  "sims",
		Usage: "list registered simulations",
		Action: simsAction,
	}
}

func configFromFlags(c *cli.Context) (elementary.Config, error) {
	cfg := elementary.DefaultConfig()
	n, err := elementary.ParseNeighborhood(c.String(bitsFlag))
	if err != nil {
		return cfg, err
	}
	cfg.Neighborhood = n
	cfg.Rule = c.Int64(ruleFlag)
	cfg.Width = c.Int(widthFlag)
	cfg.Limit = c.Int(limitFlag)

	if c.Bool(promptFlag) {
		p := newPrompter(bufio.NewReader(c.App.Reader), c.App.Writer)
		if cfg.Neighborhood, err = p.Neighborhood(); err != nil {
			return cfg, err
		}
		if cfg.Rule, err = p.Rule(cfg.Neighborhood); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func runAction(c *cli.Context) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return err
	}
	generations := c.Int(generationsFlag)
	if generations < 0 {
		return fmt.Errorf("generations must not be negative: %d", generations)
	}
	eng, err := elementary.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	var styler render.Styler = render.Plain{}
	if c.Bool(colorFlag) {
		styler = render.NewColorStyler(lipgloss.NewRenderer(c.App.Writer), elementary.Glyphs, "#7D56F4", "")
	}
	pacer := core.NewPacer(c.Int(tpsFlag))

	logger.Info("run",
		zap.Int64("rule", cfg.Rule),
		zap.Stringer("neighborhood", cfg.Neighborhood),
		zap.Int("width", cfg.Width),
		zap.Int("generations", generations))

	w := c.App.Writer
	fmt.Fprintln(w, "   start")
	err = eng.Run(generations, func(row string) error {
		if err := pacer.Wait(c.Context); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, styler.Style(row))
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "   end")
	logger.Debug("run finished", zap.Int("tracked", eng.Len()), zap.Uint8("boundary", eng.Boundary()))
	return nil
}

func paramsAction(c *cli.Context) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return err
	}
	sim, err := newSim(cfg.Name(), cfg.Map())
	if err != nil {
		return err
	}
	params, ok := sim.(core.ParametersProvider)
	if !ok {
		return fmt.Errorf("sim %q does not describe its parameters", sim.Name())
	}

	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Group", "Key", "Label", "Value"})
	for _, g := range params.Parameters().Groups {
		for _, p := range g.Params {
			table.Append([]string{g.Name, p.Key, p.Label, p.Value})
		}
	}
	table.Render()

	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	controls := tablewriter.NewWriter(c.App.Writer)
	controls.SetHeader([]string{"Control", "Min", "Max", "Step"})
	for _, pc := range provider.ParameterControls() {
		maxValue := "-"
		if pc.HasMax {
			maxValue = strconv.FormatInt(pc.Max, 10)
		}
		controls.Append([]string{pc.Key, strconv.FormatInt(pc.Min, 10), maxValue, strconv.FormatInt(pc.Step, 10)})
	}
	controls.Render()
	return nil
}

func simsAction(c *cli.Context) error {
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Sim", "Neighborhood", "Max Rule"})
	for _, name := range core.Names() {
		sim, err := newSim(name, nil)
		if err != nil {
			return err
		}
		bits, maxRule := "-", "-"
		if eng, ok := sim.(*elementary.Engine); ok {
			bits = eng.Neighborhood().String()
			maxRule = strconv.FormatInt(eng.Neighborhood().MaxRule(), 10)
		}
		table.Append([]string{name, bits, maxRule})
	}
	table.Render()
	return nil
}

func newSim(name string, cfg map[string]string) (core.Sim, error) {
	factory, ok := core.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", name)
	}
	return factory(cfg)
}
