// Package shell implements the text command interpreter driving a
// solvable arena: placing and removing enemies, tweaking equipment and
// group budget, executing moves and invoking the solvers. The interpreter
// only calls the core's mutators and queries; every failed command leaves
// the arena unchanged.
package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/ringarena/pkg/analysis"
	"github.com/yourusername/ringarena/pkg/arena"
)

// Exec interprets one command line against the arena and returns the
// printable result. Errors are *CmdError values suitable for direct
// display.
func Exec(a *arena.SolvableArena, line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "help", "h", "?":
		return helpText, nil

	case "clear":
		*a = *arena.NewSolvableArena()
		return "arena has been cleared", nil

	case "g", "groups":
		if len(args) < 1 {
			return "", missingArgument("number of groups")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 || n > 255 {
			return "", illegalArgument(args[0], "not a group count")
		}
		a.GroupOverride = arena.Num(n)
		return fmt.Sprintf("set enemy groups to %d", n), nil

	case "e", "execute", "run":
		if len(args) < 2 {
			return "", missingArgument("move")
		}
		m, err := arena.ParseMove(strings.Join(args[:2], " "))
		if err != nil {
			return "", illegalArgumentErr("move", "invalid move", err)
		}
		a.ApplyMove(m)
		return a.String(), nil

	case "solve":
		return execSolve(a, args)

	case "analyze":
		return execAnalyze(a, args)

	case "-", "undo":
		if len(args) < 2 {
			return "", missingArgument("column and rows")
		}
		positions, err := parsePositions(args[0], args[1])
		if err != nil {
			return "", err
		}
		for _, p := range positions {
			a.Remove(p)
		}
		return a.String(), nil

	case "+hammer":
		a.Equipment.Hammer = true
		return "throwing hammer available", nil
	case "-hammer":
		a.Equipment.Hammer = false
		return "throwing hammer unavailable", nil
	case "+boots":
		a.Equipment.IronBoots = true
		return "iron boots available", nil
	case "-boots":
		a.Equipment.IronBoots = false
		return "iron boots unavailable", nil

	case "show":
		return a.String(), nil

	default:
		return execAdd(a, cmd, args)
	}
}

// execAdd handles the placement shorthand: "c2 124 [H|J|P]" places
// enemies in column 2, rings 1, 2 and 4, with an optional requirement.
func execAdd(a *arena.SolvableArena, cmd string, args []string) (string, error) {
	if len(args) < 1 {
		return "", missingArgument("rows")
	}
	required := arena.AnyAttack
	if len(args) >= 2 {
		switch args[1] {
		case "H":
			required = arena.NeedsHammer
		case "J":
			required = arena.NeedsJump
		case "P":
			required = arena.BootsOrHammer
		default:
			return "", illegalArgument(args[1], "expected H, J or P")
		}
	}
	positions, err := parsePositions(cmd, args[0])
	if err != nil {
		return "", err
	}
	for _, p := range positions {
		a.Add(&arena.Enemy{Position: p, Required: required})
	}
	return a.String(), nil
}

// execSolve handles "solve [fast] [in N]".
func execSolve(a *arena.SolvableArena, args []string) (string, error) {
	fast := false
	if len(args) > 0 && args[0] == "fast" {
		fast = true
		args = args[1:]
	}

	if len(args) > 0 {
		if args[0] != "in" {
			return "", illegalArgument(args[0], "expected in")
		}
		if len(args) < 2 {
			return "", missingArgument("number of turns")
		}
		turns, err := strconv.Atoi(args[1])
		if err != nil || turns < 0 {
			return "", illegalArgument(args[1], "not a number of turns")
		}

		solution, ok := arena.Solve(a, turns, fast, nil)
		if !ok {
			return "no solution was found :(", nil
		}
		if len(solution) == 0 {
			return "Arena is already solved!", nil
		}
		return "Solution: " + formatMoves(solution), nil
	}

	solution, turns, ok := arena.SolveAuto(a, fast, 0)
	if !ok {
		return "no solution was found :(", nil
	}
	if len(solution) == 0 {
		return "Arena is already solved!", nil
	}
	return fmt.Sprintf("solution was found in %d turns: %s", turns, formatMoves(solution)), nil
}

// execAnalyze handles "analyze [trials] [depth]": scramble sampling of
// the current board.
func execAnalyze(a *arena.SolvableArena, args []string) (string, error) {
	opts := analysis.ScrambleOptions{Trials: 100, Depth: 3, Fast: true}
	if len(args) > 0 {
		trials, err := strconv.Atoi(args[0])
		if err != nil || trials <= 0 {
			return "", illegalArgument(args[0], "not a trial count")
		}
		opts.Trials = trials
	}
	if len(args) > 1 {
		depth, err := strconv.Atoi(args[1])
		if err != nil || depth <= 0 {
			return "", illegalArgument(args[1], "not a scramble depth")
		}
		opts.Depth = depth
	}

	res := analysis.Scramble(a, opts)
	return fmt.Sprintf(
		"scrambled %d times at depth %d: %d solved (%.0f%%), mean %.1f turns (stddev %.1f)",
		res.Trials, opts.Depth, res.Solved, res.SolvedFraction*100,
		res.MeanTurns, res.TurnsStdDev), nil
}

func formatMoves(moves []arena.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

// parsePositions expands the "c<column> <rows>" shorthand into validated
// positions: each digit of rows is a 1-indexed ring on that column.
func parsePositions(columnArg, rowsArg string) ([]arena.Position, error) {
	if !strings.HasPrefix(columnArg, "c") {
		return nil, unknownCommand(columnArg)
	}
	column, err := strconv.Atoi(columnArg[1:])
	if err != nil {
		return nil, illegalArgumentErr(columnArg, "invalid column number", err)
	}
	if column > 0 {
		column--
	}
	slot, aerr := arena.Slot.Adapt(column)
	if aerr != nil {
		return nil, illegalArgumentErr(columnArg, "out of bounds", aerr)
	}

	positions := make([]arena.Position, 0, len(rowsArg))
	for _, ch := range rowsArg {
		if ch < '0' || ch > '9' {
			return nil, illegalArgument(rowsArg, "rows have to be numbers")
		}
		ring := int(ch - '0')
		if ring > 0 {
			ring--
		}
		p, aerr := arena.At(ring, int(slot))
		if aerr != nil {
			return nil, illegalArgumentErr(fmt.Sprintf("%s %s", columnArg, rowsArg), "out of bounds", aerr)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

const helpText = `set enemy positions: c1 124 H/J/P
remove enemies: - c1 3
set number of enemy groups: g 4
solve: solve [fast] [in 3]
scramble sampling: analyze [trials] [depth]
equipment: +hammer / -hammer / +boots / -boots
manually execute turns: e r2 5
show the arena: show
clear arena: clear`
