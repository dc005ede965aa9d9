/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package units

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Disambiguator picks one name out of several registry names matching the same dimension.
// candidates always holds at least two names, in registry order.
type Disambiguator func(d Dimension, candidates []string) (string, error)

// Strategy is an enumeration of the built-in disambiguation policies.
type Strategy int

// enumeration of Strategy
const (
	// FailStrategy refuses to choose and returns an AmbiguousNameError.
	FailStrategy Strategy = iota
	// FirstMatchStrategy picks the earliest registered candidate.
	FirstMatchStrategy
	// PromptStrategy asks on standard input.
	PromptStrategy
)

var strategyNames = map[Strategy]string{
	FailStrategy:       "fail",
	FirstMatchStrategy: "first",
	PromptStrategy:     "prompt",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// ParseStrategy maps "fail", "first" or "prompt" to a Strategy. The empty string selects FailStrategy.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return FailStrategy, nil
	}
	for s, n := range strategyNames {
		if n == strings.ToLower(name) {
			return s, nil
		}
	}
	return FailStrategy, fmt.Errorf("unsupported disambiguation strategy: %q", name)
}

// NewDisambiguator is a factory that returns the Disambiguator for the provided strategy.
// PromptStrategy reads from os.Stdin and writes to os.Stdout.
func NewDisambiguator(strategy Strategy) (Disambiguator, error) {
	switch strategy {
	case FailStrategy:
		return FailOnAmbiguity, nil
	case FirstMatchStrategy:
		return FirstMatch, nil
	case PromptStrategy:
		return Prompt(os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported disambiguation strategy: %v", strategy)
	}
}

// FailOnAmbiguity is the non-interactive default: it always returns an AmbiguousNameError.
func FailOnAmbiguity(d Dimension, candidates []string) (string, error) {
	return "", &AmbiguousNameError{Dimension: d, Candidates: slices.Clone(candidates)}
}

// FirstMatch returns the earliest registered candidate.
func FirstMatch(_ Dimension, candidates []string) (string, error) {
	return candidates[0], nil
}

// Prompt returns a Disambiguator that lists the candidates on out and reads a single answer
// from in. The answer may be the 1-based index of a candidate or its exact name.
func Prompt(in io.Reader, out io.Writer) Disambiguator {
	scanner := bufio.NewScanner(in)
	return func(d Dimension, candidates []string) (string, error) {
		fmt.Fprintf(out, "Dimension %q matches several names:\n", d.String())
		for i, c := range candidates {
			fmt.Fprintf(out, "  %d) %s\n", i+1, c)
		}
		fmt.Fprint(out, "Choose one: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading choice: %w", err)
			}
			return "", ErrNoChoice
		}
		answer := strings.TrimSpace(scanner.Text())
		if idx, err := strconv.Atoi(answer); err == nil {
			if idx >= 1 && idx <= len(candidates) {
				return candidates[idx-1], nil
			}
			return "", fmt.Errorf("%w: index %d out of range", ErrNoChoice, idx)
		}
		if slices.Contains(candidates, answer) {
			return answer, nil
		}
		return "", fmt.Errorf("%w: %q is not a candidate", ErrNoChoice, answer)
	}
}
