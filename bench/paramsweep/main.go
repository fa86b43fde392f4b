// Command paramsweep times Sign across a grid of candidate (T, Tau) round
// counts at a fixed (N, LowMC) shape and renders an interactive scatter of
// signature size vs. signing time, in the style of the teacher's
// Additionnals/plot_pacs_sweep.go scatter-over-a-parameter-sweep tool —
// simplified down to the two axes a Picnic3 parameter choice actually
// trades off.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/DongLeiGryphonSecure/picnic3/lowmc"
	"github.com/DongLeiGryphonSecure/picnic3/params"
	"github.com/DongLeiGryphonSecure/picnic3/picnic3"
)

type sample struct {
	t, tau   int
	sizeKB   float64
	signMS   float64
	verifyMS float64
}

func sweep() []sample {
	// (T, Tau) pairs at growing soundness targets, N=16 fixed (matches the
	// standard presets' party count); LowMC-128-4-10 throughout so only the
	// round/open-count tradeoff varies.
	grid := [][2]int{
		{64, 10}, {128, 20}, {200, 30}, {250, 36}, {300, 40}, {419, 52},
	}

	key := make([]byte, 16)
	plaintext := make([]byte, 16)
	for i := range key {
		key[i] = byte(i + 1)
		plaintext[i] = byte(0xA0 + i)
	}

	var out []sample
	for _, g := range grid {
		p, err := params.NewBundle(16, g[0], g[1], 128, 4, 10, 16, 32, 16, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip T=%d Tau=%d: %v\n", g[0], g[1], err)
			continue
		}
		c := lowmc.NewCipher(p)
		ciphertext := c.Encrypt(key, plaintext)
		priv := picnic3.PrivateKey{Key: key}
		pub := picnic3.PublicKey{Plaintext: plaintext, Ciphertext: ciphertext}
		message := []byte("paramsweep")

		start := time.Now()
		sig, err := picnic3.Sign(p, c, priv, pub, message)
		signElapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sign failed T=%d Tau=%d: %v\n", g[0], g[1], err)
			continue
		}

		start = time.Now()
		if err := picnic3.Verify(p, c, pub, message, sig); err != nil {
			fmt.Fprintf(os.Stderr, "verify failed T=%d Tau=%d: %v\n", g[0], g[1], err)
			continue
		}
		verifyElapsed := time.Since(start)

		data := picnic3.Serialize(p, sig)
		out = append(out, sample{
			t: g[0], tau: g[1],
			sizeKB:   float64(len(data)) / 1024.0,
			signMS:   float64(signElapsed.Microseconds()) / 1000.0,
			verifyMS: float64(verifyElapsed.Microseconds()) / 1000.0,
		})
	}
	return out
}

func main() {
	outPath := flag.String("out", "paramsweep.html", "output HTML file")
	flag.Parse()

	samples := sweep()
	if len(samples) == 0 {
		fmt.Fprintln(os.Stderr, "no samples produced; nothing to plot")
		os.Exit(1)
	}

	page := components.NewPage().SetPageTitle("Picnic3 signature size vs. signing time")
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Signature size vs. signing time across (T, Tau)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Signing time (ms)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Signature size (KB)", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.ScatterData, 0, len(samples))
	for _, s := range samples {
		items = append(items, opts.ScatterData{
			Value: []interface{}{s.signMS, s.sizeKB, s.t, s.tau, s.verifyMS},
			Name:  fmt.Sprintf("T=%d Tau=%d", s.t, s.tau),
		})
	}
	sc.AddSeries("candidates", items, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}))
	page.AddCharts(sc)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d points)\n", *outPath, len(samples))
}
