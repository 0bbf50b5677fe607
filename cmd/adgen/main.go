// Command adgen renders an ad to PNG or prints copy suggestions without
// starting the editor server.
//
//	adgen render -title "Summer Sale" -size facebook -image bg.jpg -out out/
//	adgen render -apply headline:0 -product "Handmade soap" -out out/
//	adgen suggest -product "Handmade soap" -tone "warm, playful"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"addesigner/internal/copygen"
	"addesigner/internal/domain"
	"addesigner/internal/domain/jsoncfg"
	"addesigner/internal/infra"
	"addesigner/internal/render"
	"addesigner/internal/storage"
	"addesigner/pkg/zip"
)

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "adgen:", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: adgen <render|suggest> [flags]")

type env struct {
	stdout io.Writer
	logger infra.Logger
	cfg    *infra.Config
	// loader overrides the configured generator; set by tests.
	loader copygen.Loader
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return runWith(ctx, args, stdout, stderr, nil)
}

func runWith(ctx context.Context, args []string, stdout, stderr io.Writer, loader copygen.Loader) error {
	if len(args) == 0 {
		return errUsage
	}
	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	e := &env{
		stdout: stdout,
		logger: infra.NewLoggerTo(stderr, cfg.AppEnv),
		cfg:    cfg,
		loader: loader,
	}
	switch args[0] {
	case "render":
		return e.render(ctx, args[1:], stderr)
	case "suggest":
		return e.suggest(ctx, args[1:], stderr)
	}
	return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
}

type renderFlags struct {
	patch   jsoncfg.DesignPatch
	image   string
	out     string
	apply   string
	product string
	tone    string
	all     bool
	zip     bool
	json    bool
}

func parseRenderFlags(args []string, stderr io.Writer) (renderFlags, error) {
	var f renderFlags
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title := fs.String("title", "", "headline")
	subtitle := fs.String("subtitle", "", "supporting text")
	cta := fs.String("cta", "", "call-to-action label")
	bg := fs.String("bg", "", "background color, #rrggbb")
	accent := fs.String("accent", "", "accent color, #rrggbb")
	text := fs.String("text", "", "text color, #rrggbb")
	font := fs.String("font", "", "font family: inter, poppins, oswald")
	size := fs.String("size", "", "size preset key or WxH")
	fs.StringVar(&f.image, "image", "", "background image file")
	fs.StringVar(&f.out, "out", ".", "output directory")
	fs.StringVar(&f.apply, "apply", "", "apply a generated suggestion first, category:index (e.g. headline:0)")
	fs.StringVar(&f.product, "product", domain.DefaultProduct, "product pitch used by -apply")
	fs.StringVar(&f.tone, "tone", domain.DefaultTone, "tone used by -apply")
	fs.BoolVar(&f.all, "all", false, "write one PNG per size preset")
	fs.BoolVar(&f.zip, "zip", false, "also write every preset into one zip archive")
	fs.BoolVar(&f.json, "json", false, "print the design and layout as JSON")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	// only flags given on the command line become part of the patch
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			f.patch.Title = title
		case "subtitle":
			f.patch.Subtitle = subtitle
		case "cta":
			f.patch.CTALabel = cta
		case "bg":
			f.patch.Background = bg
		case "accent":
			f.patch.Accent = accent
		case "text":
			f.patch.Text = text
		case "font":
			f.patch.Font = font
		case "size":
			f.patch.Size = size
		}
	})
	return f, nil
}

// parseApply splits "category:index".
func parseApply(v string) (domain.Category, int, error) {
	name, idx, ok := strings.Cut(v, ":")
	if !ok {
		return "", 0, fmt.Errorf("-apply %q: want category:index", v)
	}
	c, err := domain.ParseCategory(name)
	if err != nil {
		return "", 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return "", 0, fmt.Errorf("-apply %q: index: %w", v, err)
	}
	return c, n, nil
}

type renderOutput struct {
	Design jsoncfg.DesignView `json:"design"`
	Files  []string           `json:"files"`
}

func (e *env) render(ctx context.Context, args []string, stderr io.Writer) error {
	f, err := parseRenderFlags(args, stderr)
	if err != nil {
		return err
	}

	state := domain.NewDesignState()
	if err := f.patch.Apply(&state); err != nil {
		return err
	}

	if f.image != "" {
		img, err := loadImage(f.image)
		if err != nil {
			e.logger.Warn().Err(err).Str("image", f.image).Msg("rendering without background image")
		} else {
			state.BackgroundImage = img
		}
	}

	if f.apply != "" {
		c, index, err := parseApply(f.apply)
		if err != nil {
			return err
		}
		adapter, err := e.adapter()
		if err != nil {
			return err
		}
		sg, err := adapter.Suggest(ctx, f.product, f.tone)
		if err != nil {
			return err
		}
		list := sg.List(c)
		if index < 0 || index >= len(list) {
			return fmt.Errorf("%w: %s #%d of %d", domain.ErrInvalidSuggestion, c, index, len(list))
		}
		if err := c.ApplyTo(&state, list[index]); err != nil {
			return err
		}
		e.logger.Info().Str("category", string(c)).Str("text", list[index]).Msg("applied suggestion")
	}

	store, err := storage.NewFileStore(f.out)
	if err != nil {
		return err
	}
	composer := render.NewComposer(render.NewFontRegistry(render.FontOptions{Dir: e.cfg.FontDir, Logger: &e.logger}))

	presets := []domain.SizePreset{state.Size}
	if f.all || f.zip {
		presets = domain.Presets()
	}
	var (
		files  []string
		assets []zip.Asset
	)
	for _, p := range presets {
		st := state
		st.Size = p
		data, err := render.PNGBytes(composer.Render(st))
		if err != nil {
			return err
		}
		name := render.Filename(p)
		assets = append(assets, zip.Asset{Filename: name, Data: data})
		if p != state.Size && !f.all {
			continue
		}
		key, err := store.Write(ctx, name, data)
		if err != nil {
			return err
		}
		path, _ := store.Path(key)
		files = append(files, path)
	}
	if f.zip {
		archive, err := zip.ArchiveAssets(assets)
		if err != nil {
			return err
		}
		key, err := store.Write(ctx, "ads.zip", archive)
		if err != nil {
			return err
		}
		path, _ := store.Path(key)
		files = append(files, path)
	}

	if f.json {
		_, err := fmt.Fprintln(e.stdout, string(jsoncfg.MustMarshal(renderOutput{Design: jsoncfg.ViewOf(state), Files: files})))
		return err
	}
	for _, p := range files {
		if _, err := fmt.Fprintln(e.stdout, p); err != nil {
			return err
		}
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return render.DecodeImage(f)
}

func (e *env) suggest(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	product := fs.String("product", domain.DefaultProduct, "what is being advertised")
	tone := fs.String("tone", domain.DefaultTone, "tone of voice")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	adapter, err := e.adapter()
	if err != nil {
		return err
	}
	sg, err := adapter.Suggest(ctx, *product, *tone)
	if err != nil {
		return err
	}
	if ferr := sg.Err(); ferr != nil {
		e.logger.Warn().Err(ferr).Msg("some categories failed")
	}
	if *asJSON {
		_, err := fmt.Fprintln(e.stdout, string(jsoncfg.MustMarshal(sg)))
		return err
	}
	for _, c := range domain.Categories() {
		fmt.Fprintf(e.stdout, "%s:\n", c)
		for i, s := range sg.List(c) {
			fmt.Fprintf(e.stdout, "  %d. %s\n", i, s)
		}
	}
	return nil
}

func (e *env) adapter() (*copygen.Adapter, error) {
	loader := e.loader
	if loader == nil {
		l, err := copygen.NewLoader(e.cfg.GenProvider, copygen.OpenAIOptions{
			APIKey:  e.cfg.GenAPIKey,
			BaseURL: e.cfg.GenBaseURL,
			Model:   e.cfg.GenModel,
		})
		if err != nil {
			return nil, err
		}
		loader = l
	}
	capability := copygen.NewCapability(loader, &e.logger)
	return copygen.NewAdapter(capability, copygen.DefaultGenerateOptions(), &e.logger), nil
}
