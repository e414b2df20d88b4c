package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		phone TEXT,
		role TEXT NOT NULL DEFAULT 'USER',
		subscription_until DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_codes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		purpose TEXT NOT NULL,
		code TEXT NOT NULL,
		new_email TEXT,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		UNIQUE(user_id, purpose)
	);`)
}

func createResumeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE resumes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		template TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createJobTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE job_listings (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL,
		salary TEXT,
		apply_url TEXT,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_by TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPlanTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE plans (
		id TEXT PRIMARY KEY,
		code TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		price_cents INTEGER NOT NULL,
		duration_days INTEGER NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME
	);`)
}

func createSaleTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sales (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		plan_id TEXT NOT NULL,
		coupon_id TEXT,
		amount_cents INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		reference TEXT NOT NULL,
		approved_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCouponTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE coupons (
		id TEXT PRIMARY KEY,
		code TEXT UNIQUE NOT NULL,
		percent_off INTEGER NOT NULL,
		max_uses INTEGER NOT NULL DEFAULT 0,
		uses INTEGER NOT NULL DEFAULT 0,
		expires_at DATETIME,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME
	);`)
}

func createChatTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chat_threads (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE chat_messages (
		id TEXT PRIMARY KEY,
		thread_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME
	);`)
}
