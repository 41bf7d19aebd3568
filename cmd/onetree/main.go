package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"onetree"
)

// hashBits is the digest width assumed when estimating opening payload sizes.
const hashBits = 256

func main() {
	var (
		mode    = flag.String("profile", "", "enable profiling mode, one of [cpu, mem, mutex, block, trace]")
		csp     = flag.Int("csp", 320, "security parameter")
		grind   = flag.Int("grind", 8, "grinding bits subtracted from csp before deriving parameters")
		tau     = flag.Int("tau", 40, "number of openings, which is also the number of split steps")
		tauMin  = flag.Int("taumin", 0, "sweep start; set both taumin and taumax to run a tau sweep")
		tauMax  = flag.Int("taumax", 0, "sweep end (inclusive)")
		out     = flag.String("o", "", "write sweep results to a csv file instead of stdout")
		plot    = flag.Bool("plot", false, "render the histogram as a terminal graph")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	const profilePath = "."
	switch *mode {
	case "cpu":
		defer profile.Start(profile.ProfilePath(profilePath), profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.ProfilePath(profilePath), profile.MemProfile).Stop()
	case "mutex":
		defer profile.Start(profile.ProfilePath(profilePath), profile.MutexProfile).Stop()
	case "block":
		defer profile.Start(profile.ProfilePath(profilePath), profile.BlockProfile).Stop()
	case "trace":
		defer profile.Start(profile.ProfilePath(profilePath), profile.TraceProfile).Stop()
	default:
		// don't profile
	}

	logCfg := zap.NewDevelopmentConfig()
	if *verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	onetree.SetLogger(logger)

	if *tauMin > 0 || *tauMax > 0 {
		if err := runSweep(*csp, *grind, *tauMin, *tauMax, *out); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runOnce(*csp-*grind, *tau, *plot); err != nil {
		log.Fatal(err)
	}
}

func runOnce(csp, tau int, plot bool) error {
	params, err := onetree.DeriveVCParams(csp, tau)
	if err != nil {
		return err
	}
	leaves, err := params.Leaves()
	if err != nil {
		return err
	}
	fmt.Printf("csp=%d tau=%d: t0=%d k0=%d t1=%d k1=%d\n",
		csp, tau, params.T0, params.K0, params.T1, params.K1)
	fmt.Printf("Initial leaves: %d\n", leaves)
	fmt.Printf("Worst-case opening size: %d pnodes\n", params.OpeningSize())
	fmt.Printf("Configuration space bound: %s\n", onetree.ConfigSpaceBound2(leaves, tau))

	analysis, err := onetree.Analyze(csp, tau)
	if err != nil {
		return err
	}
	hist := analysis.Hist

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "pnodes\tprobability\tcumulative\t")
	cum := 0.0
	for _, bin := range hist {
		cum += bin.Prob
		fmt.Fprintf(w, "%d\t%.9f\t%.9f\t\n", bin.Nodes, bin.Prob, cum)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	median := hist.TailBound(1.0 / 2)
	fmt.Printf("Total mass: %.9f\n", hist.TotalMass())
	fmt.Printf("Expected pnodes: %.4f\n", hist.ExpectedNodes())
	fmt.Printf("Tail bounds: 1/8=%d 1/4=%d 1/2=%d\n",
		hist.TailBound(1.0/8), hist.TailBound(1.0/4), median)
	fmt.Printf("Median-bound opening payload: %d bytes (%d pnodes at %d-bit digests)\n",
		onetree.RoundToByte(median*hashBits)/8, median, hashBits)

	if plot {
		fmt.Println(plotHistogram(hist))
	}
	return nil
}

// plotHistogram renders the histogram as a dense series over node
// counts so gaps show up as zero-probability valleys.
func plotHistogram(hist onetree.Histogram) string {
	if len(hist) == 0 {
		return ""
	}
	series := make([]float64, hist[len(hist)-1].Nodes+1)
	for _, bin := range hist {
		series[bin.Nodes] = bin.Prob
	}
	return asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Caption("probability by pnode count"))
}

func runSweep(csp, grind, tauMin, tauMax int, out string) error {
	points, err := onetree.SweepTau(csp, grind, tauMin, tauMax)
	if err != nil {
		return err
	}
	dst := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}
	w := csv.NewWriter(dst)
	if err := w.Write([]string{"lambda", "tau", "expected_pnodes", "t_open_1_8", "t_open_1_4", "t_open_1_2"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Csp),
			strconv.Itoa(p.Tau),
			strconv.FormatFloat(p.Expected, 'f', 6, 64),
			strconv.Itoa(p.Tail8),
			strconv.Itoa(p.Tail4),
			strconv.Itoa(p.Tail2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
