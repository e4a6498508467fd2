// Command evaluate runs a single interview evaluation from the command line
// and prints the JSON result.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"interviewcoach/internal/completion"
	"interviewcoach/internal/config"
	"interviewcoach/internal/interview"
)

func main() {
	question := flag.String("question", "", "interview question (read from stdin when empty)")
	answer := flag.String("answer", "", "candidate answer")
	timeTaken := flag.Float64("time", -1, "seconds the candidate took; negative means unknown")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Println("no .env loaded:", err)
	}

	if *question == "" {
		fmt.Fprintln(os.Stderr, "Enter question")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		*question = strings.TrimRight(line, "\r\n")
	}

	req := interview.Request{Question: *question, Answer: *answer}
	if *timeTaken >= 0 {
		req.TimeTaken = interview.SecondsTaken(*timeTaken)
	}

	client, err := completion.New(config.CompletionFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(run(context.Background(), client, req))
}

func run(ctx context.Context, client completion.Client, req interview.Request) int {
	out, err := interview.Evaluate(ctx, client, req)
	if err != nil {
		if errors.Is(err, interview.ErrValidation) {
			log.Println(err)
			return 2
		}
		log.Println("backend_error:", err)
		return 1
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out.Body()); err != nil {
		log.Println("encode result:", err)
		return 1
	}
	return 0
}
