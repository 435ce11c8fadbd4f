package cli

import (
	"context"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benoitkugler/shapedraw/canvas"
	"github.com/benoitkugler/shapedraw/canvasraster"
	"github.com/benoitkugler/shapedraw/drawstyle"
	"github.com/benoitkugler/shapedraw/i18n"
	"github.com/benoitkugler/shapedraw/scene"
	"github.com/benoitkugler/shapedraw/shapes"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// sceneFlags override the settings of a scene file.
type sceneFlags struct {
	profile      string
	language     string
	translations []string
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile, "profile", "", "drawing profile (see the profiles command)")
	cmd.Flags().StringVarP(&f.language, "lang", "l", "", "language of the texts, such as fr or de_DE")
	cmd.Flags().StringSliceVarP(&f.translations, "translations", "t", nil, "translation files (.ts or .toml)")
}

func newRenderCmd() *cobra.Command {
	var (
		flags  sceneFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Draw a scene into a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			return runRender(cmd.Context(), args[0], output, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: scene name with .png extension)")
	return cmd
}

func runRender(ctx context.Context, scenePath, output string, flags sceneFlags) error {
	logger := loggerFromContext(ctx)
	start := time.Now()

	sc, drawer, err := prepare(ctx, scenePath, flags)
	if err != nil {
		logger.Error("can't load scene", "err", err)
		return err
	}

	var background color.Color = drawstyle.Transparent
	if sc.Background != "" {
		background, _ = drawstyle.ParseColor(sc.Background) // validated on load
	}
	img := canvasraster.NewImage(sc.Width, sc.Height, background)
	sc.Draw(drawer, canvasraster.NewContext(img))

	f, err := os.Create(output)
	if err != nil {
		logger.Error("can't create output", "err", err)
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		logger.Error("can't encode image", "err", err)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Infof("Rendered %d shapes to %s (%s)", len(sc.Shapes), output, time.Since(start).Round(time.Millisecond))
	return nil
}

func newTraceCmd() *cobra.Command {
	var flags sceneFlags
	cmd := &cobra.Command{
		Use:   "trace <scene.toml>",
		Short: "Print the paint operations of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runTrace(ctx context.Context, w io.Writer, scenePath string, flags sceneFlags) error {
	sc, drawer, err := prepare(ctx, scenePath, flags)
	if err != nil {
		loggerFromContext(ctx).Error("can't load scene", "err", err)
		return err
	}
	var rec canvas.Recorder
	sc.Draw(drawer, canvas.New(&rec))
	for _, op := range rec.Ops {
		if _, err := fmt.Fprintln(w, op); err != nil {
			return err
		}
	}
	return nil
}

// prepare loads the scene and builds the drawer it asks for,
// flags taking precedence over the scene settings.
func prepare(ctx context.Context, scenePath string, flags sceneFlags) (*scene.Scene, *shapes.Drawer, error) {
	logger := loggerFromContext(ctx)

	sc, err := scene.Load(scenePath)
	if err != nil {
		return nil, nil, err
	}

	profileName := sc.Profile
	if flags.profile != "" {
		profileName = flags.profile
	}
	profile := shapes.Standard
	if profileName != "" {
		if profile, err = shapes.ProfileByName(profileName); err != nil {
			return nil, nil, err
		}
	}
	logger.Debug("using profile", "profile", profile)

	lang := sc.Language
	if flags.language != "" {
		lang = flags.language
	}
	files := append(sc.TranslationPaths(), flags.translations...)
	tr, err := loadTranslator(ctx, lang, files)
	if err != nil {
		return nil, nil, err
	}
	return sc, shapes.New(profile, tr), nil
}

// loadTranslator reads the translation files into a catalog and returns
// the lookup for `lang`. Without language, texts are not translated.
func loadTranslator(ctx context.Context, lang string, files []string) (i18n.Translator, error) {
	logger := loggerFromContext(ctx)
	if lang == "" {
		if len(files) > 0 {
			logger.Warn("translation files given without language, ignoring them")
		}
		return i18n.Identity, nil
	}
	tag, err := i18n.ParseLanguage(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	cat := i18n.NewCatalog()
	for _, file := range files {
		var (
			fileTag language.Tag
			n       int
		)
		switch ext := strings.ToLower(filepath.Ext(file)); ext {
		case ".ts":
			fileTag, n, err = cat.ReadTSFile(file, language.Und)
		case ".toml":
			fileTag, n, err = cat.ReadTOMLFile(file, language.Und)
		default:
			err = fmt.Errorf("unsupported translation format %q", ext)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("loaded translations", "file", file, "language", fileTag, "count", n)
	}
	return cat.Translator(tag), nil
}
