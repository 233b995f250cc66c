package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/gamedb"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

var flagYes bool

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show the save slots",
	Long:  `Lists the save slots with the driver stored in each.`,
	Args:  cobra.NoArgs,
	Run:   runSlots,
}

var newCmd = &cobra.Command{
	Use:   "new <slot>",
	Short: "Create a save from the template",
	Long: `Initializes an empty slot with a copy of the template player record.

Examples:
  racing new 1`,
	Args: cobra.ExactArgs(1),
	Run:  runNew,
}

var showCmd = &cobra.Command{
	Use:   "show <slot>",
	Short: "Print a save's player record",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a save",
	Long: `Removes a slot's directory. Asks for confirmation unless --yes is given.

Examples:
  racing delete 2
  racing delete 2 --yes`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Delete without asking")
}

// loadGameData returns the game database, or an empty one if it is missing
// or unreadable.
func loadGameData(store *storage.Store) *gamedb.Database {
	db, err := store.LoadGameData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load game data: %v\n", err)
		return gamedb.Empty()
	}
	return db
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240")))
}

func runSlots(_ *cobra.Command, _ []string) {
	store, _ := openData(newLogger(os.Stderr), false)
	db := loadGameData(store)
	occupied := store.CheckSlots()

	t := newTable().Headers("Slot", "Status", "Driver", "Level", "Money", "Car")
	for _, slot := range storage.Slots() {
		n := strconv.Itoa(slot)
		if !occupied[slot] {
			t.Row(n, "empty", "", "", "", "")
			continue
		}
		rec, err := store.LoadPlayer(slot, db)
		if err != nil {
			t.Row(n, "unreadable", "", "", "", "")
			continue
		}
		t.Row(n, "saved", rec.Name, strconv.Itoa(rec.Level), fmt.Sprintf("$%d", rec.Money), rec.CurrentCarName())
	}

	fmt.Println(t)
	fmt.Println()
	fmt.Println("Run 'racing play' to continue a save.")
}

func runNew(_ *cobra.Command, args []string) {
	slot := parseSlot(args[0])
	store, _ := openData(newLogger(os.Stderr), true)

	if err := store.CreateSlot(slot); err != nil {
		if errors.Is(err, core.ErrAlreadyExists) {
			fatal("slot %d is already in use (run 'racing delete %d' first)", slot, slot)
		}
		fatal("could not create slot %d: %v", slot, err)
	}
	fmt.Printf("Created a new save in slot %d.\n", slot)
}

func runShow(_ *cobra.Command, args []string) {
	slot := parseSlot(args[0])
	store, _ := openData(newLogger(os.Stderr), false)
	db := loadGameData(store)

	rec, err := store.LoadPlayer(slot, db)
	if err != nil {
		if storage.IsNotFound(err) {
			fatal("slot %d is empty", slot)
		}
		fatal("could not read slot %d: %v", slot, err)
	}

	current := "-"
	if rec.CurrentCar != "" {
		current = fmt.Sprintf("%s (%s)", rec.CurrentCarName(), rec.CurrentCar)
	}

	t := newTable().
		Row("Driver", rec.Name).
		Row("Money", fmt.Sprintf("$%d", rec.Money)).
		Row("Level", strconv.Itoa(rec.Level)).
		Row("Experience", strconv.Itoa(rec.Exp)).
		Row("Current car", current)
	fmt.Printf("Slot %d\n", slot)
	fmt.Println(t)

	fmt.Println()
	fmt.Printf("Garage (%d):\n", len(rec.Garage))
	for _, id := range rec.Garage {
		fmt.Printf("  %-10s %s\n", id, db.CarName(id))
	}

	if len(rec.Inventory) > 0 {
		keys := make([]string, 0, len(rec.Inventory))
		for k := range rec.Inventory {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Println()
		fmt.Println("Inventory:")
		for _, k := range keys {
			note := ""
			if _, ok := db.Item(k); !ok {
				note = "  (not in catalog)"
			}
			fmt.Printf("  %-10s %s%s\n", k, rec.Inventory[k], note)
		}
	}
}

func runDelete(_ *cobra.Command, args []string) {
	slot := parseSlot(args[0])
	store, _ := openData(newLogger(os.Stderr), false)

	if !store.Occupied(slot) {
		fatal("slot %d is empty", slot)
	}
	if !flagYes && !confirm(fmt.Sprintf("Delete the save in slot %d?", slot)) {
		fmt.Println("Cancelled.")
		return
	}

	if err := store.DeleteSlot(slot); err != nil {
		fatal("could not delete slot %d: %v", slot, err)
	}
	fmt.Printf("Deleted slot %d.\n", slot)
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
