package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/vmhoang/logicmin"
)

var heading = color.New(color.FgCyan, color.Bold)

func GetFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "in",
			Usage: "Input minterm spec file (required)",
		},
		cli.IntFlag{
			Name:  "inputs, n",
			Usage: "Number of input variables",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "markdown, md",
			Usage: "Also save the truth table as Markdown",
		},
	}
}

func main() {
	color.NoColor = color.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	app := cli.NewApp()
	app.Name = "logicmin"
	app.Usage = "Two-level logic minimization and BDD synthesis"
	app.Flags = GetFlags()
	app.Action = func(c *cli.Context) error {
		if c.String("in") == "" {
			return cli.NewExitError("--in is required", 1)
		}
		return runSpecFile(c.String("in"), c.Int("inputs"), c.Bool("markdown"))
	}
	app.Commands = []cli.Command{
		{
			Name:      "random",
			Usage:     "Generate a random spec file and minimize it",
			ArgsUsage: "[N] [M] [on_ratio] [dc_ratio]",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed",
					Usage: "Random seed (default: current time)",
					Value: 0,
				},
				cli.BoolFlag{
					Name:  "markdown, md",
					Usage: "Also save the truth table as Markdown",
				},
			},
			Action: runRandom,
		},
		{
			Name:  "synth",
			Usage: "Synthesize the first output to a SystemVerilog netlist via a BDD",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "in",
					Usage: "Input minterm spec file (required)",
				},
				cli.IntFlag{
					Name:  "inputs, n",
					Usage: "Number of input variables",
					Value: 3,
				},
				cli.StringFlag{
					Name:  "outdir",
					Usage: "Directory for the generated files",
					Value: ".",
				},
				cli.IntFlag{
					Name:  "tests",
					Usage: "Random vectors in the generated testbench",
					Value: 1000,
				},
			},
			Action: runSynth,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func loadTable(path string, numInputs int) (*logicmin.TruthTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	spec, err := logicmin.ParseSpec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return logicmin.NewTruthTable(numInputs, spec)
}

func runSpecFile(path string, numInputs int, markdown bool) error {
	table, err := loadTable(path, numInputs)
	if err != nil {
		return err
	}

	heading.Println("Truth table:")
	if err := logicmin.WriteTable(os.Stdout, table); err != nil {
		return err
	}

	if markdown {
		mdPath := stem(path) + "_truth_table.md"
		if err := saveMarkdown(table, mdPath); err != nil {
			return err
		}
		logrus.Infof("markdown truth table saved to %s", mdPath)
	}

	results, err := table.MinimizeAll(logicmin.RenderOptions{})
	if err != nil {
		return err
	}

	var cubes []string
	for _, res := range results {
		fmt.Println()
		heading.Printf("=== %s ===\n", res.Output)
		fmt.Printf("PIs: %s\n", implicantList(res.Selected))
		if len(res.Uncovered) > 0 {
			logrus.Warnf("output %s: uncovered ON minterms %v", res.Output, res.Uncovered)
		}
		fmt.Printf("SOP: %s\n", res.SOP)
		cubes = append(cubes, res.Cubes...)
	}

	pla, err := logicmin.BuildPLA(table, cubes)
	if err != nil {
		return err
	}
	fmt.Println()
	heading.Println("PLA:")
	fmt.Println(pla)
	return nil
}

func runRandom(c *cli.Context) error {
	numInputs, err := argInt(c, 0, 4)
	if err != nil {
		return err
	}
	numOutputs, err := argInt(c, 1, 2)
	if err != nil {
		return err
	}
	onRatio, err := argFloat(c, 2, 0.35)
	if err != nil {
		return err
	}
	dcRatio, err := argFloat(c, 3, 0.15)
	if err != nil {
		return err
	}
	if onRatio > 0.5 {
		logrus.Warn("on_ratio > 0.5 is clamped to 0.5")
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	spec := logicmin.RandomSpec(numInputs, numOutputs, onRatio, dcRatio, seed)

	const path = "random_spec.txt"
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := logicmin.WriteSpec(f, spec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logrus.Infof("generated random spec -> %s (seed %d)", path, seed)

	return runSpecFile(path, numInputs, c.Bool("markdown"))
}

func runSynth(c *cli.Context) error {
	path := c.String("in")
	if path == "" {
		return cli.NewExitError("--in is required", 1)
	}
	table, err := loadTable(path, c.Int("inputs"))
	if err != nil {
		return err
	}

	out := table.Outputs()[0]
	logrus.Infof("synthesizing output %s", out.Name)

	bdd := logicmin.NewBDD(table.NumInputs())
	root, err := bdd.FromMinterms(out.On, out.DC)
	if err != nil {
		return err
	}
	logrus.Infof("BDD nodes: %d total, %d internal", bdd.NodeCount(), bdd.InternalCount())

	netlist := logicmin.NewNetlist(table.NumInputs(), table.InputNames())
	netlist.BuildFromBDD(bdd, root, "out")
	logrus.Infof("netlist gates: %d", netlist.GateCount())

	writer := logicmin.NewVerilogWriter(netlist, "netlist", "out")
	outdir := c.String("outdir")
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return err
	}

	expected := make([]int, table.NumRows())
	for i := range expected {
		if out.On.Test(uint(i)) {
			expected[i] = 1
		}
	}

	files := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"netlist.sv", func(f *os.File) error { return writer.WriteModule(f) }},
		{"ref_model.v", func(f *os.File) error { return writer.WriteGoldenModel(f, expected) }},
		{"testbench.sv", func(f *os.File) error { return writer.WriteTestbench(f, c.Int("tests")) }},
	}
	for _, file := range files {
		target := filepath.Join(outdir, file.name)
		f, err := os.Create(target)
		if err != nil {
			return err
		}
		if err := file.write(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logrus.Infof("generated %s", target)
	}
	return nil
}

func saveMarkdown(table *logicmin.TruthTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := logicmin.WriteMarkdownTable(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func implicantList(cubes []logicmin.Implicant) string {
	parts := make([]string, len(cubes))
	for i, imp := range cubes {
		parts[i] = imp.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if s := strings.TrimSuffix(base, ext); s != "" {
		return s
	}
	return base
}

func argInt(c *cli.Context, i, def int) (int, error) {
	arg := c.Args().Get(i)
	if arg == "" {
		return def, nil
	}
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("argument %d must be an integer, got %q", i+1, arg)
	}
	return v, nil
}

func argFloat(c *cli.Context, i int, def float64) (float64, error) {
	arg := c.Args().Get(i)
	if arg == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d must be numeric, got %q", i+1, arg)
	}
	return v, nil
}
