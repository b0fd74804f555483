package db

// Snapshot tables. List-valued fields (episode, characters, residents) are stored as JSON arrays.
const createCharactersTable = `
CREATE TABLE IF NOT EXISTS characters (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    status TEXT,
    species TEXT,
    type TEXT,
    gender TEXT,
    origin_name TEXT,
    origin_url TEXT,
    location_name TEXT,
    location_url TEXT,
    image TEXT,
    episodes TEXT,
    url TEXT,
    created TEXT,
    fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_characters_name ON characters(name);
`

const createEpisodesTable = `
CREATE TABLE IF NOT EXISTS episodes (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    air_date TEXT,
    episode TEXT,
    characters TEXT,
    url TEXT,
    created TEXT,
    fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const createLocationsTable = `
CREATE TABLE IF NOT EXISTS locations (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT,
    dimension TEXT,
    residents TEXT,
    url TEXT,
    created TEXT,
    fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const insertCharacter = `
INSERT OR REPLACE INTO characters (
    id, name, status, species, type, gender,
    origin_name, origin_url, location_name, location_url,
    image, episodes, url, created
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const insertEpisode = `
INSERT OR REPLACE INTO episodes (
    id, name, air_date, episode, characters, url, created
) VALUES (?, ?, ?, ?, ?, ?, ?)
`

const insertLocation = `
INSERT OR REPLACE INTO locations (
    id, name, type, dimension, residents, url, created
) VALUES (?, ?, ?, ?, ?, ?, ?)
`

const selectCharacterRows = `
SELECT id, name, COALESCE(status, ''), COALESCE(species, ''), COALESCE(gender, ''),
       COALESCE(origin_name, ''), COALESCE(location_name, '')
FROM characters
ORDER BY id
`
