package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"blogapi/models"
)

type CounterTotals struct {
	Views  int64 `json:"views"`
	Likes  int64 `json:"likes"`
	Shares int64 `json:"shares"`
}

type TagCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type Statistics struct {
	Posts     int64            `json:"posts"`
	Notes     int64            `json:"notes"`
	Comments  int64            `json:"comments"`
	Users     int64            `json:"users"`
	Guests    int64            `json:"guests"`
	Bookmarks int64            `json:"bookmarks"`
	PostTotal CounterTotals    `json:"postCounters"`
	NoteTotal CounterTotals    `json:"noteCounters"`
	Tags      []TagCount       `json:"tagDistribution"`
	UsersBy   map[string]int64 `json:"monthlyUsers"`
	GuestsBy  map[string]int64 `json:"monthlyGuests"`
}

type StatisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// Collect gathers the blog-wide numbers in one pass: entity counts, counter
// sums, tag usage and the current year's monthly signup/visit distributions.
func (r *StatisticsRepository) Collect(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{
		UsersBy:  emptyMonths(),
		GuestsBy: emptyMonths(),
	}
	db := r.db.WithContext(ctx)

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.Post{}, &stats.Posts},
		{&models.Note{}, &stats.Notes},
		{&models.Comment{}, &stats.Comments},
		{&models.User{}, &stats.Users},
		{&models.Guest{}, &stats.Guests},
		{&models.Bookmark{}, &stats.Bookmarks},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("counting rows: %w", err)
		}
	}

	if err := r.sumCounters(db, "posts", &stats.PostTotal); err != nil {
		return nil, err
	}
	if err := r.sumCounters(db, "notes", &stats.NoteTotal); err != nil {
		return nil, err
	}

	err := db.Table("tags").
		Select("tags.name AS name, COUNT(post_tags.post_id) AS count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Group("tags.name").
		Order("count DESC").
		Scan(&stats.Tags).Error
	if err != nil {
		return nil, fmt.Errorf("collecting tag distribution: %w", err)
	}

	yearStart := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if err := r.monthly(db, &models.User{}, yearStart, stats.UsersBy); err != nil {
		return nil, err
	}
	if err := r.monthly(db, &models.Guest{}, yearStart, stats.GuestsBy); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *StatisticsRepository) sumCounters(db *gorm.DB, table string, dest *CounterTotals) error {
	err := db.Table(table).
		Select("COALESCE(SUM(view_count), 0) AS views, COALESCE(SUM(like_count), 0) AS likes, COALESCE(SUM(share_count), 0) AS shares").
		Scan(dest).Error
	if err != nil {
		return fmt.Errorf("summing %s counters: %w", table, err)
	}
	return nil
}

// monthly buckets this year's rows by creation month. Bucketing happens in Go
// so the query stays portable across postgres and sqlite.
func (r *StatisticsRepository) monthly(db *gorm.DB, model any, since time.Time, dest map[string]int64) error {
	var createdAts []time.Time
	err := db.Model(model).
		Where("created_at >= ?", since).
		Pluck("created_at", &createdAts).Error
	if err != nil {
		return fmt.Errorf("collecting monthly distribution: %w", err)
	}
	for _, t := range createdAts {
		dest[t.Month().String()]++
	}
	return nil
}

func emptyMonths() map[string]int64 {
	months := make(map[string]int64, 12)
	for m := time.January; m <= time.December; m++ {
		months[m.String()] = 0
	}
	return months
}

type Activity struct {
	Comments         int64 `json:"comments"`
	PostInteractions int64 `json:"postInteractions"`
	NoteInteractions int64 `json:"noteInteractions"`
}

// ActivitySince counts what happened on the blog after the given time, for
// the daily digest.
func (r *StatisticsRepository) ActivitySince(ctx context.Context, since time.Time) (*Activity, error) {
	activity := &Activity{}
	db := r.db.WithContext(ctx)

	err := db.Model(&models.Comment{}).Where("created_at >= ?", since).Count(&activity.Comments).Error
	if err != nil {
		return nil, fmt.Errorf("counting recent comments: %w", err)
	}
	err = db.Table("post_interactions").Where("created_at >= ?", since).Count(&activity.PostInteractions).Error
	if err != nil {
		return nil, fmt.Errorf("counting recent post interactions: %w", err)
	}
	err = db.Table("note_interactions").Where("created_at >= ?", since).Count(&activity.NoteInteractions).Error
	if err != nil {
		return nil, fmt.Errorf("counting recent note interactions: %w", err)
	}
	return activity, nil
}

// TrackGuest records a first visit per address. Repeat visits are no-ops.
func (r *StatisticsRepository) TrackGuest(ctx context.Context, ip string) error {
	guest := models.Guest{IPAddress: ip}
	err := r.db.WithContext(ctx).
		Where(models.Guest{IPAddress: ip}).
		FirstOrCreate(&guest).Error
	if err != nil {
		return fmt.Errorf("tracking guest: %w", err)
	}
	return nil
}
