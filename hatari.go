// This file is part of Hatari.
//
// Hatari is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 2 of the License, or
// (at your option) any later version.
//
// Hatari is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hatari.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/troed/hatari/hardware"
	"github.com/troed/hatari/hardware/clocks"
	"github.com/troed/hatari/hardware/cycint"
	"github.com/troed/hatari/logger"
	"github.com/troed/hatari/statsview"
	"github.com/troed/hatari/version"
)

// timing of the PAL video field, in nominal CPU cycles.
const (
	cyclesPerLine  = 512
	cyclesPerFrame = 160256
)

// the MFP Timer C is conventionally programmed as the 200Hz system timer.
const timerCPeriod = clocks.MFP / 200

// burnCPU is a stand-in for the instruction level CPU emulation. It
// consumes a plausible number of cycles per instruction and nothing more;
// enough to exercise every part of the scheduler at full speed.
type burnCPU struct {
	pc uint32
}

func (c *burnCPU) Step() int {
	c.pc += 2
	return 4
}

func (c *burnCPU) PC() uint32 {
	return c.pc
}

func (c *burnCPU) Reset() {
	c.pc = 0
}

func run(output io.Writer, frames int, freqShift int, vizFile string) error {
	st := hardware.NewST(&burnCPU{})
	st.CycInt.SetCPUFreqShift(freqShift)

	frame := 0
	st.CycInt.Register(cycint.InterruptVideoVBL, func() {
		st.CycInt.Acknowledge()
		frame++
		st.CycInt.AddRelative(cycint.InterruptVideoVBL, cyclesPerFrame, cycint.CPUCycles)
	})

	line := 0
	st.CycInt.Register(cycint.InterruptVideoHBL, func() {
		st.CycInt.Acknowledge()
		line++
		st.CycInt.AddRelative(cycint.InterruptVideoHBL, cyclesPerLine, cycint.CPUCycles)
	})

	ticks200hz := 0
	st.CycInt.Register(cycint.InterruptMFPMainTimerC, func() {
		st.CycInt.Acknowledge()
		ticks200hz++
		st.CycInt.AddRelative(cycint.InterruptMFPMainTimerC, timerCPeriod, cycint.MFPCycles)
	})

	st.CycInt.AddRelative(cycint.InterruptVideoVBL, cyclesPerFrame, cycint.CPUCycles)
	st.CycInt.AddRelative(cycint.InterruptVideoHBL, cyclesPerLine, cycint.CPUCycles)
	st.CycInt.AddRelative(cycint.InterruptMFPMainTimerC, timerCPeriod, cycint.MFPCycles)

	logger.Logf(logger.Allow, "demo", "running %d frames at frequency shift %d", frames, freqShift)

	err := st.Run(func() (bool, error) {
		return frame < frames, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d frames, %d lines, %d ticks of the 200Hz timer\n", frame, line, ticks200hz)

	if vizFile != "" {
		f, err := os.Create(vizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		st.CycInt.Visualise(f)
		fmt.Fprintf(output, "pending interrupt chain written to %s\n", vizFile)
	}

	return nil
}

func main() {
	frames := flag.Int("frames", 500, "number of PAL frames to emulate")
	freqShift := flag.Int("freqshift", 0, "CPU frequency shift: 0=8MHz 1=16MHz 2=32MHz")
	vizFile := flag.String("memviz", "", "write graphviz rendering of the pending interrupt chain to file")
	echoLog := flag.Bool("log", false, "echo log entries to stderr")
	stats := flag.Bool("statsview", false, "run the statsview HTTP server (requires the statsview build tag)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		vers, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vers, rev)
		os.Exit(0)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr, true)
	}

	if *stats {
		if !statsview.Available() {
			fmt.Fprintln(os.Stderr, "this build does not include the statsview")
			os.Exit(10)
		}
		statsview.Launch(os.Stderr)
	}

	err := run(os.Stdout, *frames, *freqShift, *vizFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}
