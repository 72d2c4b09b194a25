// Command soniphorm applies offline audio effects to WAV files.
//
// Usage:
//
//	soniphorm list
//	soniphorm apply [flags] <input.wav> <output.wav> <effect> ...
//	soniphorm version
//
// Effects are given as name or name:key=value,key=value and run in
// order. The region flags select the part of the file to process; the
// region is re-evaluated against the current buffer before every step,
// so length-changing effects keep the chain valid.
//
// Examples:
//
//	soniphorm apply in.wav out.wav normalise fadeout
//	soniphorm apply --start 1.5 --end 3 in.wav out.wav "delay:time=0.5,mix=0.7"
//	soniphorm apply --source ir.wav in.wav out.wav convolve
//	soniphorm apply --seed 7 in.wav out.wav "paulstretch:stretch=12"
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/ed-devane/soniphorm-sub000/dsp/core"
	"github.com/ed-devane/soniphorm-sub000/fx"
	"github.com/ed-devane/soniphorm-sub000/internal/wavio"
	"github.com/ed-devane/soniphorm-sub000/render"
)

var version = "0.1.0"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7"))
	effectStyle = lipgloss.NewStyle().Bold(true)
	paramStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D70000"))
)

type listCmd struct{}

type applyCmd struct {
	Start  float64 `help:"Region start in seconds." default:"0"`
	End    float64 `help:"Region end in seconds; 0 means the end of the file." default:"0"`
	Source string  `type:"existingfile" help:"Source WAV for convolve, ringmodbuffer, and vocoder."`
	Seed   int64   `help:"Seed for the randomized effects." default:"1"`
	Depth  int     `help:"Output bit depth." enum:"16,24" default:"16"`

	Input  string   `arg:"" type:"existingfile" help:"Input WAV file."`
	Output string   `arg:"" help:"Output WAV file."`
	Steps  []string `arg:"" name:"effect" help:"Effect steps as name or name:key=value,..."`
}

type versionCmd struct{}

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	List    listCmd    `cmd:"" help:"List the effect catalog with parameters."`
	Apply   applyCmd   `cmd:"" help:"Apply an effect chain to a WAV file."`
	Version versionCmd `cmd:"" help:"Print version information."`
}

func main() {
	args := &cli{}
	ctx := kong.Parse(args,
		kong.Name("soniphorm"),
		kong.Description("Offline audio effects engine for WAV files"),
		kong.UsageOnError(),
	)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if args.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := ctx.Run(log); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:")+" "+err.Error())
		os.Exit(1)
	}
}

func (*listCmd) Run(*logrus.Logger) error {
	catalog := fx.NewCatalog(fx.WithRenderer(render.New()))

	fmt.Println(titleStyle.Render("Effects"))
	for _, name := range catalog.Names() {
		effect := catalog.Lookup(name)
		fmt.Printf("  %s  %s\n", effectStyle.Render(name), effect.Label())

		for _, spec := range effect.Parameters() {
			if spec.Kind() == fx.KindEnum {
				fmt.Printf("      %s\n", paramStyle.Render(fmt.Sprintf(
					"%s: one of %s (default %s)",
					spec.Key, strings.Join(spec.Options, ", "), spec.DefaultOption)))

				continue
			}

			unit := ""
			if spec.Unit != "" {
				unit = " " + spec.Unit
			}
			fmt.Printf("      %s\n", paramStyle.Render(fmt.Sprintf(
				"%s: %g to %g%s (default %g)",
				spec.Key, spec.Min, spec.Max, unit, spec.Default)))
		}
	}

	return nil
}

func (c *applyCmd) Run(log *logrus.Logger) error {
	buf, err := wavio.Load(c.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":     c.Input,
		"frames":   buf.Len(),
		"channels": buf.NumChannels(),
		"rate":     buf.SampleRate,
	}).Info("loaded input")

	var source *fx.Buffer
	if c.Source != "" {
		source, err = wavio.Load(c.Source)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"file":   c.Source,
			"frames": source.Len(),
		}).Info("loaded source")
	}

	catalog := fx.NewCatalog(fx.WithRenderer(render.New()), fx.WithSeed(c.Seed))

	for _, step := range c.Steps {
		name, values, err := parseStep(step)
		if err != nil {
			return err
		}

		effect := catalog.Lookup(name)
		if effect == nil {
			return fmt.Errorf("unknown effect %q, see 'soniphorm list'", name)
		}

		start, end := c.region(buf)
		if err := fx.ValidateRegion(buf, start, end); err != nil {
			return err
		}

		var out *fx.Buffer
		if src, ok := effect.(fx.SourceEffect); ok {
			if source == nil {
				return fmt.Errorf("effect %q needs --source", name)
			}
			out, err = src.ProcessWithSource(buf, source, start, end, values)
		} else {
			out, err = effect.Process(buf, start, end, values)
		}
		if err != nil {
			return fmt.Errorf("applying %q: %w", name, err)
		}

		log.WithFields(logrus.Fields{
			"effect": name,
			"start":  start,
			"end":    end,
			"frames": out.Len(),
		}).Debug("applied effect")

		buf = out
	}

	if err := wavio.Save(c.Output, buf, c.Depth); err != nil {
		return err
	}

	peak := 0.0
	for _, data := range buf.Channels {
		if p := core.Peak(data); p > peak {
			peak = p
		}
	}
	log.WithFields(logrus.Fields{
		"file":    c.Output,
		"frames":  buf.Len(),
		"seconds": buf.Duration(),
		"peak_db": core.LinearToDB(peak),
	}).Info("saved output")

	return nil
}

// region converts the second-based flags into a clamped sample range
// against the current buffer.
func (c *applyCmd) region(buf *fx.Buffer) (start, end int) {
	start = int(math.Round(c.Start * buf.SampleRate))
	if start < 0 {
		start = 0
	}
	if start > buf.Len() {
		start = buf.Len()
	}

	end = buf.Len()
	if c.End > 0 {
		end = int(math.Round(c.End * buf.SampleRate))
		if end > buf.Len() {
			end = buf.Len()
		}
	}

	return start, end
}

func (*versionCmd) Run(*logrus.Logger) error {
	fmt.Printf("%s %s\n", titleStyle.Render("soniphorm"), version)

	return nil
}

// parseStep splits "name:key=value,key=value" into an effect name and
// parameter values. Values that parse as numbers become numeric;
// everything else is passed as an option string.
func parseStep(step string) (string, fx.Values, error) {
	name, rest, found := strings.Cut(step, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("empty effect step %q", step)
	}
	if !found || rest == "" {
		return name, nil, nil
	}

	values := make(fx.Values)
	for _, pair := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return "", nil, fmt.Errorf("malformed parameter %q in step %q", pair, step)
		}

		if num, err := strconv.ParseFloat(value, 64); err == nil {
			values[key] = fx.Num(num)
		} else {
			values[key] = fx.Str(value)
		}
	}

	return name, values, nil
}
