package queries

import (
	"context"
	"sort"

	"oja/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// latitudeDegreeKm is the length of one degree of latitude.
const latitudeDegreeKm = 111.0

// GetNearbyStoresQueryHandler prefilters stores with a latitude band in SQL and computes
// the haversine distance in Go.
type GetNearbyStoresQueryHandler struct {
	db *gorm.DB
}

func NewGetNearbyStoresQueryHandler(db *gorm.DB) GetNearbyStoresQueryHandler {
	return GetNearbyStoresQueryHandler{db: db}
}

func (h GetNearbyStoresQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyStoresQuery,
) ([]GetNearbyStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	band := query.RadiusKm()/latitudeDegreeKm + 0.01
	origin := query.Origin()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			address,
			location_lat,
			location_lng,
			rating_average,
			rating_count
		FROM stores
		WHERE location_lat BETWEEN ? AND ?
	`, origin.Lat()-band, origin.Lat()+band).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]GetNearbyStoresQueryResponse, 0)
	for rows.Next() {
		var (
			resp     GetNearbyStoresQueryResponse
			id       uuid.UUID
			lat, lng float64
		)
		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Category,
			&resp.Address,
			&lat,
			&lng,
			&resp.RatingAverage,
			&resp.RatingCount,
		)
		if err != nil {
			return nil, err
		}

		location, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}

		distance := origin.DistanceKm(location)
		if distance > query.RadiusKm() {
			continue
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = storeID
		resp.Location = location
		resp.DistanceKm = distance
		stores = append(stores, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].DistanceKm < stores[j].DistanceKm
	})

	return stores, nil
}
