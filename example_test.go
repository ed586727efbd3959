package neogo_test

import (
	"fmt"
	"time"

	"github.com/hupe1980/neogo"
	"github.com/hupe1980/neogo/filter"
	"github.com/hupe1980/neogo/model"
)

func ExampleStore_Query() {
	bodies := []*model.Body{
		model.NewBody("433", "Eros", 16.84, false),
		model.NewBody("2010 PK9", "", 0.1, true),
	}
	approaches := []*model.Approach{
		model.NewApproach("433", time.Date(2012, time.January, 31, 11, 1, 0, 0, time.UTC), 0.179, 5.57),
		model.NewApproach("2010 PK9", time.Date(2020, time.July, 14, 3, 20, 0, 0, time.UTC), 0.024, 14.09),
	}

	store, err := neogo.New(bodies, approaches)
	if err != nil {
		panic(err)
	}

	hazardous := true
	results := store.Query().
		Criteria(filter.Criteria{Hazardous: &hazardous}).
		Limit(5).
		Execute()

	for _, a := range results {
		fmt.Println(a.Body.Fullname(), a.TimeString())
	}
	// Output:
	// 2010 PK9 2020-Jul-14 03:20
}

func ExampleStore_LookupByName() {
	bodies := []*model.Body{model.NewBody("433", "Eros", 16.84, false)}
	approaches := []*model.Approach{
		model.NewApproach("433", time.Date(2012, time.January, 31, 11, 1, 0, 0, time.UTC), 0.179, 5.57),
	}

	store, err := neogo.New(bodies, approaches)
	if err != nil {
		panic(err)
	}

	if body, ok := store.LookupByName("Eros"); ok {
		fmt.Println(body.Fullname(), len(body.Approaches))
	}
	// Output:
	// 433 (Eros) 1
}
