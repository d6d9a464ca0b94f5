package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algowalk/internal/config"
	"github.com/san-kum/algowalk/internal/interview"
	"github.com/san-kum/algowalk/internal/questions"
	"github.com/san-kum/algowalk/internal/share"
	"github.com/san-kum/algowalk/internal/storage"
	"github.com/san-kum/algowalk/internal/topics"
	"github.com/san-kum/algowalk/internal/tui"
)

var (
	dataDir    string
	speed      int
	startStep  int
	shuffle    bool
	timeLimit  int
	configFile string
	preset     string
	baseURL    string
)

// main registers the algowalk commands. Without a subcommand it opens the
// interactive topic picker.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algowalk",
		Short: "step-by-step data structure walkthroughs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".algowalk", "data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list topics",
		RunE:  listTopics,
	}

	stepsCmd := &cobra.Command{
		Use:   "steps [topic]",
		Short: "print a walkthrough as plain text",
		Args:  cobra.ExactArgs(1),
		RunE:  dumpSteps,
	}

	playCmd := &cobra.Command{
		Use:   "play [topic]",
		Short: "animated walkthrough",
		Args:  cobra.ExactArgs(1),
		RunE:  playTopic,
	}
	playCmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "playback speed (1-100)")
	playCmd.Flags().IntVar(&startStep, "step", 0, "initial step index (from a share link)")
	playCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	playCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	playCmd.Flags().StringVar(&baseURL, "base", config.DefaultBase, "base url for share links")

	quizCmd := &cobra.Command{
		Use:   "quiz [topic]",
		Short: "interview mode",
		Args:  cobra.ExactArgs(1),
		RunE:  quizTopic,
	}
	quizCmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle question order")
	quizCmd.Flags().IntVar(&timeLimit, "time-limit", 0, "time limit in seconds (0 = unlimited)")
	quizCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	quizCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "list saved quiz sessions",
		RunE:  listSessions,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [session_id]",
		Short: "plot per-question time for a session",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSession,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [session_id]",
		Short: "export a session to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}

	shareCmd := &cobra.Command{
		Use:   "share [topic]",
		Short: "print and copy a share link for a step",
		Args:  cobra.ExactArgs(1),
		RunE:  shareStep,
	}
	shareCmd.Flags().IntVar(&startStep, "step", 0, "step index to link to")
	shareCmd.Flags().StringVar(&baseURL, "base", config.DefaultBase, "base url for share links")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	rootCmd.AddCommand(listCmd, stepsCmd, playCmd, quizCmd, sessionsCmd, plotCmd, exportJSONCmd, shareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig folds preset, config file and CLI flags together; flags that
// were set explicitly win over the file, which wins over the preset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("step") {
		cfg.Step = startStep
	}
	if cmd.Flags().Changed("base") {
		cfg.Base = baseURL
	}
	if cmd.Flags().Changed("shuffle") {
		cfg.Quiz.Shuffle = shuffle
	}
	if cmd.Flags().Changed("time-limit") {
		cfg.Quiz.TimeLimitSeconds = timeLimit
	}
	return cfg, nil
}

func runInteractive() error {
	reg := topics.NewRegistry()
	sel, ok, err := tui.RunPicker(reg)
	if err != nil || !ok {
		return err
	}
	if sel.Quiz {
		return runQuiz(sel.Topic, config.DefaultConfig())
	}
	topic, err := reg.Get(sel.Topic)
	if err != nil {
		return err
	}
	return tui.RunPlay(topic, config.DefaultConfig(), share.OSC52Clipboard{Out: os.Stderr})
}

func listTopics(cmd *cobra.Command, args []string) error {
	reg := topics.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tSUMMARY")
	for _, name := range reg.List() {
		topic, _ := reg.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", topic.Name, topic.Title, topic.Summary)
	}
	return w.Flush()
}

func dumpSteps(cmd *cobra.Command, args []string) error {
	reg := topics.NewRegistry()
	topic, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	frames := topic.Generate()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tDESCRIPTION")
	for i, f := range frames {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, f.Op, f.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d steps\n", len(frames))
	return nil
}

func playTopic(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Topic = args[0]

	reg := topics.NewRegistry()
	topic, err := reg.Get(cfg.Topic)
	if err != nil {
		return err
	}
	return tui.RunPlay(topic, cfg, share.OSC52Clipboard{Out: os.Stderr})
}

func quizTopic(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runQuiz(args[0], cfg)
}

func runQuiz(topicName string, cfg *config.Config) error {
	reg := topics.NewRegistry()
	topic, err := reg.Get(topicName)
	if err != nil {
		return err
	}

	qs, err := questions.ForTopic(topicName)
	if err != nil {
		return err
	}

	ctrl := interview.New(interview.Config{
		Topic:     topicName,
		Questions: qs,
		TimeLimit: time.Duration(cfg.Quiz.TimeLimitSeconds) * time.Second,
		Shuffle:   cfg.Quiz.Shuffle,
	})

	sess, err := tui.RunQuiz(topic.Title, ctrl)
	if err != nil {
		return err
	}
	if !sess.Complete {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(sess)
	if err != nil {
		return err
	}

	score := interview.ScoreOf(sess.Results)
	fmt.Printf("session saved: %s\n", id)
	fmt.Printf("score: %d/%d (%d%%)\n", score.Correct, score.Total, score.Percentage)
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTOPIC\tTIME\tSCORE\tPCT\tSHUFFLED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%d%%\t%t\n",
			s.ID,
			s.Topic,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Correct,
			s.Questions,
			s.Percentage,
			s.Shuffled,
		)
	}
	return w.Flush()
}

func plotSession(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("topic: %s\n", meta.Topic)
	fmt.Printf("questions: %d\n\n", len(results))

	data := make([]float64, len(results))
	for i, r := range results {
		data[i] = r.TimeSpent.Seconds()
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("seconds per question"),
	)
	fmt.Println(graph)
	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, results)
}

func shareStep(cmd *cobra.Command, args []string) error {
	reg := topics.NewRegistry()
	topic, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	// Clamp against the real walkthrough length so the link always lands
	// on a valid step.
	frames := topic.Generate()
	codec := share.Codec{Topic: topic.Name}
	n := codec.Decode(codec.Encode(startStep), len(frames)-1)

	link := codec.Link(baseURL, n)
	fmt.Println(link)

	clip := share.OSC52Clipboard{Out: os.Stderr}
	if err := clip.WriteString(link); err != nil {
		return err
	}
	fmt.Println("copied to clipboard")
	return nil
}
