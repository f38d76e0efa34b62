package store

// schemaVersion is written to PRAGMA user_version and checked on open.
const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plan (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    present_value        REAL NOT NULL,
    years                INTEGER NOT NULL,
    inflation_rate       REAL NOT NULL,
    investment_rate      REAL NOT NULL,
    start_year           INTEGER NOT NULL,
    future_goal          REAL NOT NULL,
    contribution         REAL NOT NULL,
    tolerance            REAL NOT NULL,
    total_contribution   REAL NOT NULL,
    total_future_value   REAL NOT NULL,
    currency             TEXT NOT NULL,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schedule_rows (
    period               INTEGER PRIMARY KEY,
    year                 INTEGER NOT NULL,
    periods_remaining    INTEGER NOT NULL,
    contribution         REAL NOT NULL,
    future_value         REAL NOT NULL
);
`
