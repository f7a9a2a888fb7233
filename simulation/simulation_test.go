package simulation

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/srlatch/datarecording"
	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/tracing"
)

var _ = Describe("Simulation", func() {
	var (
		mockCtrl *gomock.Controller
		out      *bytes.Buffer
	)

	consoleWith := func(input string) *plc.Console {
		return plc.NewConsole(strings.NewReader(input), out)
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		out = new(bytes.Buffer)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should run a manual session from the console", func() {
		simulation := MakeBuilder().
			WithMode(latch.ModeManual).
			WithConsole(consoleWith("1 0 2 1 0 0 0 0 0 0 0")).
			Build()

		Expect(simulation.Run()).To(Succeed())
		Expect(simulation.Terminate()).To(Succeed())

		history := simulation.GetController().History()
		Expect(latch.SRs(history)).To(Equal(
			[]int{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}))
		Expect(out.String()).To(HavePrefix(
			"\n=== MODO MANUAL === (Ingresa 0 o 1)\n" +
				"Iteración  0: Estado del pulsador (0/1): " +
				"Iteración  0: Pulsador = 1, SR = 1\n"))
		Expect(strings.Count(out.String(), plc.InvalidInputMsg)).To(Equal(1))
		Expect(simulation.Seed()).To(BeEmpty())
	})

	It("should repeat a memory session with the same seed", func() {
		run := func() []latch.State {
			simulation := MakeBuilder().
				WithMode(latch.ModeMemory).
				WithConsole(consoleWith("")).
				WithSeed(42).
				Build()

			Expect(simulation.Seed()).To(Equal("42"))
			Expect(simulation.Run()).To(Succeed())

			return simulation.GetController().History()
		}

		first := run()
		second := run()

		Expect(first).To(HaveLen(latch.NumCycles))
		Expect(second).To(Equal(first))

		buttons := make([]int, 0, len(first))
		for _, s := range first {
			buttons = append(buttons, s.Button)
		}
		Expect(latch.Replay(latch.ModeMemory, buttons)).To(Equal(first))
	})

	It("should summarize the latch actions", func() {
		simulation := MakeBuilder().
			WithMode(latch.ModeMemory).
			WithConsole(consoleWith("")).
			WithButton(plc.NewSequenceButton(0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0)).
			Build()

		Expect(simulation.Run()).To(Succeed())

		summary := new(bytes.Buffer)
		simulation.WriteSummary(summary)

		Expect(summary.String()).To(Equal("reset: 5\nset: 2\nhold: 4\n"))
		Expect(latch.SRs(simulation.GetController().History())).To(Equal(
			[]int{0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0}))
	})

	It("should record the run into a database and a csv file", func() {
		dir := GinkgoT().TempDir()
		dbPath := filepath.Join(dir, "run")
		csvPath := filepath.Join(dir, "run.csv")

		simulation := MakeBuilder().
			WithMode(latch.ModeMemory).
			WithConsole(consoleWith("")).
			WithSeed(7).
			WithTraceDB(dbPath).
			WithTraceCSV(csvPath).
			Build()

		Expect(simulation.Run()).To(Succeed())
		Expect(simulation.Terminate()).To(Succeed())

		reader := datarecording.NewReader(dbPath + ".sqlite3")
		defer reader.Close()

		reader.MapTable(tracing.CycleTableName, plc.CycleRecord{})
		_, total, err := reader.Query(context.Background(),
			tracing.CycleTableName, datarecording.QueryParams{})
		Expect(err).ToNot(HaveOccurred())
		Expect(total).To(Equal(latch.NumCycles))

		reader.MapTable(datarecording.ExecTableName, datarecording.ExecInfo{})
		results, _, err := reader.Query(context.Background(),
			datarecording.ExecTableName, datarecording.QueryParams{
				Where: "Property = ?",
				Args:  []any{"Seed"},
			})
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].(*datarecording.ExecInfo).Value).To(Equal("7"))

		content, err := os.ReadFile(csvPath)
		Expect(err).ToNot(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		Expect(lines).To(HaveLen(latch.NumCycles + 1))
	})

	It("should serve the controller through the monitor", func() {
		simulation := MakeBuilder().
			WithConsole(consoleWith("")).
			WithMonitor().
			Build()

		Expect(simulation.GetMonitor()).ToNot(BeNil())
		Expect(simulation.MonitorURL()).To(HavePrefix("http://localhost:"))

		rsp, err := http.Get(simulation.MonitorURL() + "/api/list_components")
		Expect(err).ToNot(HaveOccurred())
		defer rsp.Body.Close()

		body, err := io.ReadAll(rsp.Body)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(body)).To(Equal(`["Latch"]`))
	})

	It("should register components by name", func() {
		simulation := MakeBuilder().WithConsole(consoleWith("")).Build()

		comp := NewMockComponent(mockCtrl)
		comp.EXPECT().Name().Return("Comp").AnyTimes()

		simulation.RegisterComponent(comp)

		Expect(simulation.GetComponentByName("Comp")).To(BeIdenticalTo(comp))
		Expect(simulation.GetComponentByName(ControllerName)).
			To(BeIdenticalTo(simulation.GetController()))
		Expect(simulation.GetComponentByName("None")).To(BeNil())
		Expect(simulation.Components()).To(HaveLen(2))
		Expect(func() { simulation.RegisterComponent(comp) }).To(Panic())
	})

	It("should reject monitor options without a monitor", func() {
		Expect(func() {
			MakeBuilder().WithMonitorPort(8080).Build()
		}).To(Panic())

		Expect(func() {
			MakeBuilder().WithOpenBrowser().Build()
		}).To(Panic())
	})

	It("should reject invalid modes", func() {
		Expect(func() {
			MakeBuilder().WithMode(latch.Mode(3)).Build()
		}).To(Panic())
	})
})
