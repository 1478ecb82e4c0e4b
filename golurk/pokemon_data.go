package golurk

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed data/moves.json data/pokemon.csv
var embeddedData embed.FS

// MoveRegistry is the read-only move table. Keys are normalized move ids.
type MoveRegistry struct {
	Moves map[string]MoveData
}

// GetMove looks a move up by name. Display names ("Thunder Punch") are accepted.
func (r MoveRegistry) GetMove(name string) (*MoveData, error) {
	move, ok := r.Moves[NormalizeID(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}

	return &move, nil
}

// Pokedex is the read-only species table
type Pokedex struct {
	Pokemon []BasePokemon
	Moves   MoveRegistry
}

func (d *Pokedex) GetPokemonByPokedex(pkdNumber int) *BasePokemon {
	pkm, found := lo.Find(d.Pokemon, func(p BasePokemon) bool {
		return p.PokedexNumber == uint(pkdNumber)
	})
	if !found {
		return nil
	}

	return &pkm
}

func (d *Pokedex) GetPokemonByName(pkmName string) *BasePokemon {
	pkm, found := lo.Find(d.Pokemon, func(p BasePokemon) bool {
		return strings.EqualFold(p.Name, strings.TrimSpace(pkmName))
	})
	if !found {
		return nil
	}

	return &pkm
}

// LoadPokemon takes in the bytes of a csv file with the following columns:
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed
// in that order, after a header row. Type2 may be empty.
func LoadPokemon(fileBytes []byte) ([]BasePokemon, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	if _, err := csvReader.Read(); err != nil {
		return nil, fmt.Errorf("reading pokemon csv header: %w", err)
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		dataLogger().Error(err, "invalid csv data")
		return nil, err
	}

	chart := DefaultTypeChart()
	pokemonList := make([]BasePokemon, 0, len(rows))

	for i, row := range rows {
		if len(row) < 10 {
			return nil, fmt.Errorf("pokemon row %d: expected 10 columns, got %d", i+1, len(row))
		}

		stats := make([]uint, 0, 7)
		for _, column := range []int{0, 4, 5, 6, 7, 8, 9} {
			value, err := strconv.ParseUint(row[column], 10, 16)
			if err != nil {
				dataLogger().WithName("pokemon_parsing").Error(err, "invalid stat", "row", i+1, "column", column)
				return nil, fmt.Errorf("pokemon row %d: %w", i+1, err)
			}

			stats = append(stats, uint(value))
		}

		type1 := NormalizeTypeName(row[2])
		type2 := NormalizeTypeName(row[3])

		for _, pokemonType := range lo.Compact([]string{type1, type2}) {
			if !chart.Known(pokemonType) {
				return nil, fmt.Errorf("%w: %q for %s", ErrUnknownType, pokemonType, row[1])
			}
		}

		newPokemon := BasePokemon{
			PokedexNumber: stats[0],
			Name:          row[1],
			Type1:         type1,
			Type2:         type2,
			Hp:            stats[1],
			Attack:        stats[2],
			Def:           stats[3],
			SpAttack:      stats[4],
			SpDef:         stats[5],
			Speed:         stats[6],
		}

		dataLogger().V(2).Info("loaded pokemon", "pokedex", newPokemon.PokedexNumber, "name", newPokemon.Name)

		pokemonList = append(pokemonList, newPokemon)
	}

	dataLogger().V(1).Info("Loaded pokemon", "count", len(pokemonList))

	return pokemonList, nil
}

// LoadMoves takes in json that lists out move information
func LoadMoves(moveBytes []byte) (MoveRegistry, error) {
	parsedMoves := make([]MoveData, 0, 1000)
	moveRegistry := MoveRegistry{Moves: make(map[string]MoveData)}

	if err := json.Unmarshal(moveBytes, &parsedMoves); err != nil {
		dataLogger().Error(err, "Couldn't unmarshal move data")
		return moveRegistry, fmt.Errorf("parsing moves: %w", err)
	}

	for _, parsedMove := range parsedMoves {
		if parsedMove.IsNil() {
			return moveRegistry, fmt.Errorf("%w: move without a name", ErrUnknownMove)
		}

		if _, err := ResolveTargets(parsedMove.Target, NewSinglesFormat(LATEST_GENERATION), BattlePosition{Side: HOST}, nil); err != nil {
			return moveRegistry, fmt.Errorf("move %s: %w", parsedMove.Name, err)
		}

		parsedMove.Type = NormalizeTypeName(parsedMove.Type)
		moveRegistry.Moves[NormalizeID(parsedMove.Name)] = parsedMove
	}

	dataLogger().V(1).Info("Loaded moves", "count", len(moveRegistry.Moves))

	return moveRegistry, nil
}

// LoadData reads data/moves.json and data/pokemon.csv from files at the same time.
// Every error that happened is returned.
func LoadData(files fs.FS) (*Pokedex, []error) {
	var wg sync.WaitGroup
	wg.Add(2)
	errChan := make(chan error, 2)

	dex := &Pokedex{}

	go func() {
		defer wg.Done()

		pokemonBytes, err := fs.ReadFile(files, "data/pokemon.csv")
		if err != nil {
			errChan <- err
			return
		}

		pokemon, err := LoadPokemon(pokemonBytes)
		if err != nil {
			errChan <- err
			return
		}

		dex.Pokemon = pokemon
	}()
	go func() {
		defer wg.Done()

		moveBytes, err := fs.ReadFile(files, "data/moves.json")
		if err != nil {
			errChan <- err
			return
		}

		moves, err := LoadMoves(moveBytes)
		if err != nil {
			errChan <- err
			return
		}

		dex.Moves = moves
	}()

	wg.Wait()
	close(errChan)

	errs := make([]error, 0)
	for err := range errChan {
		errs = append(errs, err)
	}

	return dex, errs
}

var loadDefaultPokedex = sync.OnceValues(func() (*Pokedex, error) {
	dex, errs := LoadData(embeddedData)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	return dex, nil
})

// DefaultPokedex is the small data set embedded in the library, loaded once per process
func DefaultPokedex() *Pokedex {
	return Must(loadDefaultPokedex())
}
