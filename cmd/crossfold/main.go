package main

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/alexflint/go-arg"
	"github.com/hscells/crossfold"
	"github.com/hscells/crossfold/dataset"
	"github.com/hscells/crossfold/eval"
	"github.com/hscells/crossfold/model"
	"github.com/hscells/crossfold/output"
	"github.com/hscells/crossfold/split"
	"github.com/hscells/crossfold/transform"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	name    = "crossfold"
	version = "19.Feb.2021"
	author  = "Harry Scells"
)

type args struct {
	Manifest      string   `help:"Path to a dataset manifest (.properties)" arg:"-m"`
	Dataset       string   `help:"Path to a dataset csv file" arg:"-d"`
	Target        string   `help:"Name of the target column in the csv file" arg:"-t"`
	Model         string   `help:"Which model to use (ols, ridge, knn)" arg:"-M"`
	Evaluation    []string `help:"Which evaluation measures to use" arg:"-e,separate"`
	Transforms    []string `help:"Which preprocessing transforms to apply" arg:"-x,separate"`
	Folds         int      `help:"Number of cross-validation folds" arg:"-k"`
	Sequence      bool     `help:"Perform windowed (time series) cross-validation" arg:"-s"`
	Strategy      string   `help:"Windowing strategy (traditional, walk-forward)"`
	WindowType    string   `help:"Window type (cumulative, fixed)"`
	MinWindow     int      `help:"Minimum number of samples before the first evaluation point"`
	ForecastRange int      `help:"Number of samples held out for evaluation in each fold"`
	Curve         bool     `help:"Generate a learning curve" arg:"-c"`
	Jobs          int      `help:"Number of workers fitting learning curve models" arg:"-j"`
	Plots         string   `help:"Directory to render plots into" arg:"-p"`
	Output        string   `help:"Name of results file" arg:"-o"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

type config struct {
	Cache struct {
		Path string `toml:"path"`
	} `toml:"cache"`
	Plots struct {
		Dir string `toml:"dir"`
	} `toml:"plots"`
}

func main() {
	var args args
	args.Folds = 5
	args.ForecastRange = 1
	args.Jobs = 1
	arg.MustParse(&args)

	if len(args.Evaluation) == 0 {
		log.Fatalln("nothing to do, quitting")
	}

	dir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalln(err)
	}
	f, err := os.OpenFile(path.Join(dir, ".crossfold"), os.O_RDWR|os.O_CREATE, 0664)
	if err != nil {
		log.Fatalln(err)
	}
	var c config
	_, err = toml.DecodeReader(f, &c)
	if err != nil {
		log.Fatalln(err)
	}

	models := map[string]func() model.Model{
		"ols":   func() model.Model { return model.NewLeastSquares() },
		"ridge": func() model.Model { return model.NewRidge(1) },
		"knn":   func() model.Model { return model.NewKNN(5) },
	}
	transformations := map[string]func() transform.Transform{
		"standardize": func() transform.Transform { return transform.NewStandardize() },
		"minmax":      func() transform.Transform { return transform.NewMinMax() },
		"kmeans":      func() transform.Transform { return transform.NewKMeansFeatures(4) },
	}

	constructor, ok := models[args.Model]
	if !ok {
		log.Fatalf("unknown model %q\n", args.Model)
	}

	evaluators, err := eval.Evaluators(args.Evaluation...)
	if err != nil {
		log.Fatalln(err)
	}

	var transforms []transform.Transform
	for _, t := range args.Transforms {
		tc, ok := transformations[t]
		if !ok {
			log.Fatalf("unknown transform %q\n", t)
		}
		transforms = append(transforms, tc())
	}

	var d dataset.Dataset
	switch {
	case len(args.Manifest) > 0:
		loader, err := dataset.NewLoader(1)
		if err != nil {
			log.Fatalln(err)
		}
		d, err = loader.Load(args.Manifest)
		if err != nil {
			log.Fatalln(err)
		}
	case len(args.Dataset) > 0:
		if len(args.Target) == 0 {
			log.Fatalln("a csv dataset requires a target column")
		}
		r, err := os.OpenFile(args.Dataset, os.O_RDONLY, 0664)
		if err != nil {
			log.Fatalln(err)
		}
		d, err = dataset.FromCSV(r, args.Target)
		r.Close()
		if err != nil {
			log.Fatalln(err)
		}
	default:
		log.Fatalln("either a manifest or a csv dataset is required")
	}

	strategy, err := split.ParseStrategy(args.Strategy)
	if err != nil {
		log.Fatalln(err)
	}
	windowType, err := split.ParseWindowType(args.WindowType)
	if err != nil {
		log.Fatalln(err)
	}

	p := crossfold.NewPipeline(d, constructor(),
		crossfold.Evaluation(evaluators...),
		crossfold.Transforms(transforms...),
		crossfold.EvaluationOutput(output.JsonEvaluationFormatter),
		crossfold.Validate(crossfold.ValidationConfiguration{
			CrossValidate: true,
			Sequence:      args.Sequence,
			Curve:         args.Curve,
		}))
	p.Folds = args.Folds
	p.SequenceOptions = []crossfold.SequenceOption{
		crossfold.Strategy(strategy),
		crossfold.WindowType(windowType),
		crossfold.MinWindow(args.MinWindow),
		crossfold.ForecastRange(args.ForecastRange),
	}
	if args.Jobs > 1 {
		p.CurveOptions = []crossfold.CurveOption{
			crossfold.Jobs(args.Jobs),
			crossfold.Models(constructor),
		}
	}

	plots := args.Plots
	if len(plots) == 0 {
		plots = c.Plots.Dir
	}
	if len(plots) > 0 {
		p.Renderer = output.NewFileRenderer(plots)
	}
	if len(c.Cache.Path) > 0 {
		p.ScoreCache = crossfold.NewFileScoreCache(c.Cache.Path)
	}

	// One result per measure and procedure, plus the curve, report and done.
	expected := len(evaluators)
	if args.Sequence {
		expected += len(evaluators)
	}
	if args.Curve {
		expected++
	}
	bar := pb.New(expected).Start()

	results := make(chan crossfold.Result)
	go p.Execute(results)

	var report string
	for result := range results {
		switch result.Type {
		case crossfold.Validation, crossfold.Sequence:
			log.Printf("%s %s = %v\n", result.Type.String(), result.Measure, result.Score)
			bar.Increment()
		case crossfold.Learning:
			bar.Increment()
		case crossfold.Evaluated:
			report = result.Evaluations
		case crossfold.Error:
			log.Fatalln(result.Error)
		}
	}
	bar.Finish()

	if len(args.Output) > 0 {
		o, err := os.OpenFile(args.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
		if err != nil {
			log.Fatalln(err)
		}
		_, err = o.WriteString(report)
		if err != nil {
			log.Fatalln(err)
		}
		o.Close()
	} else {
		fmt.Println(report)
	}
}
