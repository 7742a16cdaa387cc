package postgres

// Schema DDL de las tablas de la aplicación. Se aplica con
// `tools schema | psql` (o desde el panel SQL del Postgres hosteado).
const Schema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    id         UUID PRIMARY KEY,
    owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name       TEXT NOT NULL,
    category   TEXT NOT NULL DEFAULT '',
    quantity   BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    min_stock  BIGINT NOT NULL DEFAULT 0 CHECK (min_stock >= 0),
    price      NUMERIC(14,2) NOT NULL CHECK (price > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_products_owner ON products(owner_id);

CREATE TABLE IF NOT EXISTS invoices (
    id                UUID PRIMARY KEY,
    owner_id          UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    kind              TEXT NOT NULL CHECK (kind IN ('sale', 'purchase')),
    counterparty_name TEXT NOT NULL,
    date              TIMESTAMPTZ NOT NULL,
    subtotal          NUMERIC(14,2) NOT NULL CHECK (subtotal >= 0),
    tax               NUMERIC(14,2) NOT NULL CHECK (tax >= 0),
    total             NUMERIC(14,2) NOT NULL,
    status            TEXT NOT NULL CHECK (status IN ('paid', 'pending')),
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_invoices_owner_kind ON invoices(owner_id, kind);

CREATE TABLE IF NOT EXISTS invoice_items (
    id           UUID PRIMARY KEY,
    invoice_id   UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
    product_id   UUID REFERENCES products(id) ON DELETE SET NULL,
    product_name TEXT NOT NULL,
    quantity     NUMERIC(14,3) NOT NULL CHECK (quantity > 0),
    price        NUMERIC(14,2) NOT NULL CHECK (price > 0),
    total        NUMERIC(14,2) NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items(invoice_id);

CREATE TABLE IF NOT EXISTS parties (
    id         UUID PRIMARY KEY,
    owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    kind       TEXT NOT NULL CHECK (kind IN ('customer', 'vendor')),
    name       TEXT NOT NULL,
    email      TEXT NOT NULL DEFAULT '',
    phone      TEXT NOT NULL DEFAULT '',
    address    TEXT NOT NULL DEFAULT '',
    balance    NUMERIC(14,2) NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_parties_owner_kind ON parties(owner_id, kind);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id               UUID PRIMARY KEY,
    owner_id         UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    entity_type      TEXT NOT NULL CHECK (entity_type IN ('customer', 'vendor')),
    party_id         UUID REFERENCES parties(id) ON DELETE SET NULL,
    entity_name      TEXT NOT NULL,
    transaction_type TEXT NOT NULL CHECK (transaction_type IN ('debit', 'credit')),
    amount           NUMERIC(14,2) NOT NULL CHECK (amount > 0),
    description      TEXT NOT NULL DEFAULT '',
    reference        TEXT NOT NULL DEFAULT '',
    date             TIMESTAMPTZ NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_ledger_owner ON ledger_entries(owner_id);
CREATE INDEX IF NOT EXISTS idx_ledger_party ON ledger_entries(party_id);
`
