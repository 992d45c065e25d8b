package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"studyquiz/internal/opentdb"
	"studyquiz/internal/quiz"
)

const defaultTriviaCount = 10

// TriviaSource produces import text from a remote question service.
type TriviaSource interface {
	FetchImport(ctx context.Context, amount int) (string, error)
}

type Options struct {
	Controller  *quiz.Controller
	Trivia      TriviaSource
	TriviaCount int
}

func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	ctrl := opts.Controller
	if ctrl == nil {
		return errors.New("session controller is required")
	}
	triviaCount := opts.TriviaCount
	if triviaCount <= 0 {
		triviaCount = defaultTriviaCount
	}

	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "MMAN1130 Study Game")
	printScreen(out, ctrl)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		command := strings.ToLower(args[0])

		switch command {
		case "help", "?":
			printHelp(out)
		case "exit", "quit":
			return nil
		case "show":
			printScreen(out, ctrl)
		case "start":
			if !ctrl.Start() {
				fmt.Fprintln(out, "start is only available from the main menu (type 'menu' first, or 'retry' after submitting).")
				continue
			}
			printScreen(out, ctrl)
		case "retry":
			if !ctrl.Mode().Finished() {
				fmt.Fprintln(out, "retry is available after submitting.")
				continue
			}
			ctrl.Retry()
			printScreen(out, ctrl)
		case "menu":
			ctrl.MainMenu()
			printScreen(out, ctrl)
		case "select", "s":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: select <letter>")
				continue
			}
			runSelect(out, ctrl, args[1])
		case "next", "n":
			if !requireQuiz(out, ctrl) {
				continue
			}
			ctrl.GoNext()
			printScreen(out, ctrl)
		case "prev", "p":
			if !requireQuiz(out, ctrl) {
				continue
			}
			ctrl.GoPrev()
			printScreen(out, ctrl)
		case "jump", "j":
			if !requireQuiz(out, ctrl) {
				continue
			}
			number, parseErr := parseQuestionNumber(args, 1)
			if parseErr != nil {
				fmt.Fprintf(out, "invalid question number: %v\n", parseErr)
				continue
			}
			if !ctrl.JumpTo(number-1) && ctrl.State().Cursor != number-1 {
				fmt.Fprintf(out, "no question %d.\n", number)
				continue
			}
			printScreen(out, ctrl)
		case "submit":
			if !requireQuiz(out, ctrl) {
				continue
			}
			runSubmit(out, ctrl)
		case "goto":
			if !ctrl.ResolveJump() {
				fmt.Fprintln(out, "nothing to go to.")
				continue
			}
			printScreen(out, ctrl)
		case "force":
			if !ctrl.ForceSubmit() {
				fmt.Fprintln(out, "submit first; force only applies when questions are unanswered.")
				continue
			}
			printScreen(out, ctrl)
		case "results":
			if !ctrl.ShowResults() {
				fmt.Fprintln(out, "results are available after submitting.")
				continue
			}
			printScreen(out, ctrl)
		case "review":
			if !ctrl.ShowReview() {
				fmt.Fprintln(out, "review is available after submitting.")
				continue
			}
			printScreen(out, ctrl)
		case "import":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: import <path>")
				continue
			}
			runImportFile(ctx, out, ctrl, args[1])
		case "trivia":
			if opts.Trivia == nil {
				fmt.Fprintln(out, "trivia source is not configured.")
				continue
			}
			amount, parseErr := parsePositiveInt(args, 1, triviaCount)
			if parseErr != nil {
				fmt.Fprintf(out, "invalid trivia amount: %v\n", parseErr)
				continue
			}
			runTrivia(ctx, out, ctrl, opts.Trivia, amount)
		case "export":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: export <path>")
				continue
			}
			if err := exportBank(ctrl, args[1]); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Exported %d questions to %s\n", len(ctrl.State().Bank), args[1])
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

func requireQuiz(out io.Writer, ctrl *quiz.Controller) bool {
	if ctrl.Mode() != quiz.ModeQuiz {
		fmt.Fprintln(out, "start the quiz first (type 'start').")
		return false
	}
	return true
}

func runSelect(out io.Writer, ctrl *quiz.Controller, label string) {
	if !requireQuiz(out, ctrl) {
		return
	}

	state := ctrl.State()
	index := quiz.ChoiceIndex(state.Current(), label)
	if index < 0 {
		count := len(state.Current().Choices)
		fmt.Fprintf(out, "Invalid choice. Please enter a letter %s-%s.\n", quiz.ChoiceLabel(0), quiz.ChoiceLabel(count-1))
		return
	}

	ctrl.SelectChoice(index)
	printScreen(out, ctrl)
}

func runSubmit(out io.Writer, ctrl *quiz.Controller) {
	outcome := ctrl.Submit()
	if outcome.Finished {
		printScreen(out, ctrl)
		return
	}

	fmt.Fprintf(out, "You still have unanswered questions (first at question %d/%d).\n", outcome.Unanswered+1, len(ctrl.State().Bank))
	fmt.Fprintln(out, "Type 'goto' to go there or 'force' to submit anyway.")
}

func runImportFile(ctx context.Context, out io.Writer, ctrl *quiz.Controller, path string) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(out, quiz.ImportStatus(nil, err))
		return
	}
	defer file.Close()

	_, _ = ctrl.ImportReader(ctx, file, quiz.FormatForPath(path))
	fmt.Fprintln(out, ctrl.Status())
}

func runTrivia(ctx context.Context, out io.Writer, ctrl *quiz.Controller, source TriviaSource, amount int) {
	text, err := source.FetchImport(ctx, amount)
	if err != nil {
		fmt.Fprintln(out, quiz.ImportStatus(nil, err))
		return
	}

	_, _ = ctrl.Import(text)
	fmt.Fprintln(out, ctrl.Status())
}

func exportBank(ctrl *quiz.Controller, path string) error {
	encoded, err := quiz.ExportBank(ctrl.State().Bank)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  start                 begin a new attempt from the main menu")
	fmt.Fprintln(out, "  show                  redraw the current screen")
	fmt.Fprintln(out, "  select <letter>       choose an answer; choosing it again clears it")
	fmt.Fprintln(out, "  next | prev           move between questions")
	fmt.Fprintln(out, "  jump <n>              go to question n")
	fmt.Fprintln(out, "  submit                finish the quiz")
	fmt.Fprintln(out, "  goto | force          after submit: go to the first gap, or submit anyway")
	fmt.Fprintln(out, "  results | review      switch between the two score views")
	fmt.Fprintln(out, "  retry | menu          start over, or go back to the main menu")
	fmt.Fprintln(out, "  import <path>         load questions from a JSON or YAML file")
	fmt.Fprintln(out, "  trivia [n]            load n questions from Open Trivia DB")
	fmt.Fprintln(out, "  export <path>         write the current questions as JSON")
	fmt.Fprintln(out, "  exit")
}

func parseQuestionNumber(args []string, index int) (int, error) {
	if len(args) <= index {
		return 0, errors.New("question number is required")
	}
	value, err := strconv.Atoi(args[index])
	if err != nil || value <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return value, nil
}

func parsePositiveInt(args []string, index int, defaultValue int) (int, error) {
	if len(args) <= index {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(args[index])
	if err != nil || value <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return value, nil
}

var _ TriviaSource = (*opentdb.Client)(nil)
