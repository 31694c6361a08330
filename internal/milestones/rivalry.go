package milestones

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gameday-ranker/internal/domain"
)

// Table holds the reference rivalry pairs. It is an explicit value passed
// to Classify rather than package state so tests can inject fixtures.
type Table struct {
	Iconic [][]string `yaml:"iconic"`
	Recent [][]string `yaml:"recent"`
}

// DefaultTable returns the built-in rivalry reference data.
func DefaultTable() Table {
	return Table{
		Iconic: [][]string{
			{"New York Yankees", "Boston Red Sox"},
			{"Los Angeles Dodgers", "San Francisco Giants"},
			{"Chicago Cubs", "St. Louis Cardinals"},
			{"New York Yankees", "New York Mets"},
			{"Chicago Cubs", "Chicago White Sox"},
			{"Los Angeles Dodgers", "Los Angeles Angels"},
			{"Oakland Athletics", "San Francisco Giants"},
		},
		Recent: [][]string{
			{"Los Angeles Dodgers", "San Diego Padres"},
			{"Houston Astros", "Texas Rangers"},
			{"New York Yankees", "Houston Astros"},
			{"Atlanta Braves", "New York Mets"},
			{"Atlanta Braves", "Philadelphia Phillies"},
			{"Toronto Blue Jays", "Baltimore Orioles"},
			{"Milwaukee Brewers", "Chicago Cubs"},
		},
	}
}

// LoadTable reads a rivalry table from a YAML file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read rivalry table: %w", err)
	}
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return Table{}, fmt.Errorf("parse rivalry table: %w", err)
	}
	return table, nil
}

// Classify looks up the unordered team-name pair in the table. Iconic
// takes precedence over recent; no match yields RivalryNone.
func Classify(awayName, homeName string, table Table) domain.RivalryTier {
	if pairListed(table.Iconic, awayName, homeName) {
		return domain.RivalryIconic
	}
	if pairListed(table.Recent, awayName, homeName) {
		return domain.RivalryRecent
	}
	return domain.RivalryNone
}

func pairListed(pairs [][]string, a, b string) bool {
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		if (strings.EqualFold(pair[0], a) && strings.EqualFold(pair[1], b)) ||
			(strings.EqualFold(pair[0], b) && strings.EqualFold(pair[1], a)) {
			return true
		}
	}
	return false
}
