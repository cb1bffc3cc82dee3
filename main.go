package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"essay_coach/coach"
	"essay_coach/exporter"
	"essay_coach/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	answersPath := flag.String("answers", "", "text file with one answer per line (one-shot draft mode)")
	tone := flag.String("tone", "", "essay tone")
	maxWords := flag.Int("max-words", 0, "essay word ceiling")
	out := flag.String("out", "", "write the draft as a standalone HTML page to this path")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := coach.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	agent, err := buildAgent(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv, err := server.New(agent)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// One-shot draft mode
	if *answersPath == "" {
		fmt.Fprintln(os.Stderr, "--answers is required unless --serve is set")
		os.Exit(1)
	}
	answers, err := readAnswers(*answersPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	req := coach.Request{
		Stage:    coach.StageDraft,
		Answers:  answers,
		Tone:     *tone,
		MaxWords: *maxWords,
	}
	log.Printf("[cli] drafting from %d answer(s) in %s", len(answers), *answersPath)
	res, err := agent.Run(context.Background(), req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *out != "" {
		if err := exporter.WriteFile(*out, "Essay draft", res.Essay); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Printf("[cli] draft written to %s", *out)
		return
	}
	fmt.Println(res.Essay)
}

// buildAgent wires the completion client from config and environment. A
// missing credential is not fatal here: the health probe must keep working,
// and model stages report it per call.
func buildAgent(cfg coach.Config) (*coach.Agent, error) {
	opts := coach.Options{
		Empty:       coach.EmptyPolicy(cfg.EmptyPolicy),
		OpeningPool: cfg.OpeningPool,
	}
	settings := cfg.ResolveLLM()
	if settings.APIKey == "" {
		return coach.NewAgent(nil, opts), nil
	}

	switch settings.Provider {
	case "openai":
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API; base_url is mandatory.
		if settings.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return nil, fmt.Errorf("llm provider %s not supported", settings.Provider)
	}

	llm, err := coach.NewOpenAILLMFromConfig(&settings)
	if err != nil {
		return nil, err
	}
	return coach.NewAgent(llm, opts), nil
}

func readAnswers(path string) ([]coach.Answer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var answers []coach.Answer
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		answers = append(answers, coach.Answer{Text: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}
