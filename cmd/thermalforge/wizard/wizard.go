package wizard

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/thermalforge/cmd/thermalforge/wizard/components"
	"github.com/mrsinham/thermalforge/internal/colormap"
	"github.com/mrsinham/thermalforge/internal/forge"
)

// Run launches the interactive wizard. When fromConfig is non-empty,
// the wizard starts pre-filled from that YAML file.
func Run(fromConfig string) error {
	state := DefaultState()
	if fromConfig != "" {
		loaded, err := LoadFromYAML(fromConfig)
		if err != nil {
			return err
		}
		state = loaded
	}

	if err := runForm(state); err != nil {
		return err
	}

	opts, err := ToForgeOptions(state)
	if err != nil {
		return err
	}

	fmt.Println(components.TitleStyle.Render("thermalforge"))
	fmt.Println(components.SubtitleStyle.Render(fmt.Sprintf(
		"%dx%d, %d sources, %d edges, %d frame(s) → %s (%s, %s)",
		opts.Heatmap.Width, opts.Heatmap.Height,
		opts.Heatmap.NumSources, opts.Heatmap.NumEdges,
		opts.Count, opts.OutputDir, opts.Format, opts.Colormap,
	)))

	files, err := runWithProgress(opts)
	if err != nil {
		fmt.Println(components.ErrorStyle.Render("Error: " + err.Error()))
		return err
	}
	fmt.Println(components.SuccessStyle.Render(fmt.Sprintf("Generated %d file(s) in %s", len(files), opts.OutputDir)))

	return maybeSaveConfig(state)
}

// runForm collects the configuration through huh form groups. Numeric
// fields bind through strings, as huh inputs edit text.
func runForm(state *State) error {
	widthStr := strconv.Itoa(state.Canvas.Width)
	heightStr := strconv.Itoa(state.Canvas.Height)
	sourcesStr := strconv.Itoa(state.Content.NumSources)
	edgesStr := strconv.Itoa(state.Content.NumEdges)
	sourceSigmaStr := strconv.FormatFloat(state.Content.SourceSigma, 'g', -1, 64)
	edgeSigmaStr := strconv.FormatFloat(state.Content.EdgeSigma, 'g', -1, 64)
	countStr := strconv.Itoa(state.Output.Count)

	colormapOptions := make([]huh.Option[string], 0, len(colormap.Names()))
	for _, name := range colormap.Names() {
		colormapOptions = append(colormapOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Width").
				Value(&widthStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Height").
				Value(&heightStr).
				Validate(validatePositiveInt),
		).Title("Canvas"),

		huh.NewGroup(
			huh.NewInput().
				Title("Heat sources").
				Value(&sourcesStr).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Edge curves").
				Value(&edgesStr).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Source spread sigma").
				Value(&sourceSigmaStr).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Edge blur sigma").
				Value(&edgeSigmaStr).
				Validate(validatePositiveFloat),
		).Title("Content"),

		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Value(&state.Output.OutputDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output directory is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("PNG (colormapped)", forge.FormatPNG),
					huh.NewOption("DICOM (secondary capture)", forge.FormatDICOM),
				).
				Value(&state.Output.Format),
			huh.NewSelect[string]().
				Title("Colormap").
				Options(colormapOptions...).
				Value(&state.Output.Colormap),
			huh.NewInput().
				Title("Frame count").
				Value(&countStr).
				Validate(validatePositiveInt),
			huh.NewConfirm().
				Title("Burn frame labels into the pixels?").
				Value(&state.Output.Annotate),
		).Title("Output"),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// Validated above, so these cannot fail.
	state.Canvas.Width, _ = strconv.Atoi(widthStr)
	state.Canvas.Height, _ = strconv.Atoi(heightStr)
	state.Content.NumSources, _ = strconv.Atoi(sourcesStr)
	state.Content.NumEdges, _ = strconv.Atoi(edgesStr)
	state.Content.SourceSigma, _ = strconv.ParseFloat(sourceSigmaStr, 64)
	state.Content.EdgeSigma, _ = strconv.ParseFloat(edgeSigmaStr, 64)
	state.Output.Count, _ = strconv.Atoi(countStr)
	return nil
}

// runWithProgress runs the batch behind a bubbletea progress screen.
func runWithProgress(opts forge.Options) ([]forge.GeneratedFile, error) {
	p := tea.NewProgram(newProgressModel(opts.Count))

	var (
		files  []forge.GeneratedFile
		runErr error
	)
	start := time.Now()
	go func() {
		files, runErr = forge.Run(opts, func(current, total int, path string) {
			p.Send(ProgressMsg{Current: current, Total: total, Path: path})
		})
		if runErr != nil {
			p.Send(ErrorMsg{Error: runErr})
			return
		}
		p.Send(CompletionMsg{
			TotalFiles: len(files),
			Duration:   time.Since(start),
			OutputDir:  opts.OutputDir,
		})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(progressModel); ok && m.err != nil {
		return nil, m.err
	}
	return files, runErr
}

// maybeSaveConfig offers to persist the wizard state for reuse.
func maybeSaveConfig(state *State) error {
	var save bool
	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this configuration for reuse?").
				Value(&save),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if !save {
		return nil
	}

	path = "thermalforge.yaml"
	pathForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Config path").
				Value(&path),
		),
	)
	if err := pathForm.Run(); err != nil {
		return err
	}
	if err := SaveToYAML(path, state); err != nil {
		return err
	}
	fmt.Println(components.SuccessStyle.Render("Saved " + path))
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if f <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
