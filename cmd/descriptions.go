package cmd

const rootLongDescription = `aoc2023 solves Advent of Code 2023 puzzles.

Each implemented day has its own subcommand taking the path to a puzzle
input file and printing both answers:

  aoc2023 day3 input.txt

Use "run" to solve many inputs of one day concurrently and save reports,
"view" to browse saved reports and "list" to see the available days.`

const dayLongDescription = `Solve Advent of Code 2023 day %d (%s).

The single argument is the path to the puzzle input. Both answers are
printed on stdout:

  Solution for part 1 is <answer>
  Solution for part 2 is <answer>

With --strict, input the solver would otherwise skip or count as zero
makes the command fail instead.`

const runLongDescription = `Solve every input file for one day.

Inputs are solved by up to --parallel workers. A summary is printed in the
order the inputs were given. An input that cannot be read or solved is
reported as failed without stopping the others, and the command exits
non-zero when any input failed.

Reports are written as YAML to the --reports directory (default from the
reports_dir config key) and can be browsed with "aoc2023 view".`

const listLongDescription = `List every puzzle day with a registered solver and the command that
solves it.`

const viewLongDescription = `View reports saved by "aoc2023 run", oldest first.

On a terminal, long report lists open in a scrollable, filterable view.`
