// Package advisor chats with a Gemini model that can read the inventory, to
// get restocking advice.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Advisor is the REPL session between the operator and the Storekeeper.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	expert *Expert
	// Render formats the model answers before they are printed, they are
	// printed as is when nil.
	Render func(markdown string) string
}

// New creates a new Advisor, reading the operator questions from r and
// writing answers to w.
func New(w io.Writer, r io.Reader, expert *Expert) *Advisor {
	return &Advisor{
		w:      w,
		r:      bufio.NewReader(r),
		expert: expert,
	}
}

const prompt = "advise> "

// Run starts the interactive session. Prompts are asked first, as if typed by
// the operator.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.expert.chat == nil {
		if err := a.expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the inventory advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the operator.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		answer := content.Parts[0].Text
		if a.Render != nil {
			answer = a.Render(answer)
		}
		fmt.Fprintln(a.w, answer)
	}
}
