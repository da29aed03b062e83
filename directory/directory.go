// Package directory holds the location reference dataset: the state -> city
// hierarchy and the city -> coordinate mapping issues are tagged with. The
// dataset is loaded once at startup and immutable for the life of the process.
package directory

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nagarsetu-be/models"
)

// LocationDirectory answers state/city/coordinate lookups from an in-memory
// copy of the locations collection. All lookups are read-only and safe for
// concurrent use.
type LocationDirectory struct {
	locations []models.Location
	states    []string                      // unique, in dataset order
	byState   map[string][]string           // state -> city names, dataset order
	byPair    map[[2]string]models.Location // (state, city) -> location
}

// Load reads every location record, ordered by state name so a given dataset
// always produces the same directory.
func Load(ctx context.Context, coll *mongo.Collection) (*LocationDirectory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "stateName", Value: 1}, {Key: "cityName", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}

	return New(locations), nil
}

// New builds a directory from an already-fetched dataset. Order of the input
// slice is the dataset order used for tie-breaking.
func New(locations []models.Location) *LocationDirectory {
	d := &LocationDirectory{
		locations: locations,
		byState:   make(map[string][]string),
		byPair:    make(map[[2]string]models.Location),
	}
	for _, loc := range locations {
		if _, seen := d.byState[loc.StateName]; !seen {
			d.states = append(d.states, loc.StateName)
		}
		d.byState[loc.StateName] = append(d.byState[loc.StateName], loc.CityName)

		key := [2]string{loc.StateName, loc.CityName}
		if _, dup := d.byPair[key]; !dup {
			d.byPair[key] = loc
		}
	}
	return d
}

// States returns the unique state names in dataset order.
func (d *LocationDirectory) States() []string {
	out := make([]string, len(d.states))
	copy(out, d.states)
	return out
}

// CitiesForState returns the city names belonging to state, empty if the
// state is unknown.
func (d *LocationDirectory) CitiesForState(state string) []string {
	cities := d.byState[state]
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// Resolve looks a city up by its (state, city) pair. City names are not
// globally unique across states, so this is the lookup issue creation uses.
func (d *LocationDirectory) Resolve(state, city string) (models.Location, bool) {
	loc, ok := d.byPair[[2]string{state, city}]
	return loc, ok
}

// ResolveCity returns the first location matching city in dataset order,
// ignoring state. Ambiguous when two states share a city name; prefer
// Resolve where the state is known.
func (d *LocationDirectory) ResolveCity(city string) (models.Location, bool) {
	for _, loc := range d.locations {
		if loc.CityName == city {
			return loc, true
		}
	}
	return models.Location{}, false
}

// Seed inserts the default reference dataset when the collection is empty.
// Production datasets are loaded out-of-band; this keeps a fresh database
// usable.
func Seed(ctx context.Context, coll *mongo.Collection) error {
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count locations: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(seedLocations))
	for _, loc := range seedLocations {
		loc.CreatedAt = now
		docs = append(docs, loc)
	}

	_, err = coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	return nil
}
