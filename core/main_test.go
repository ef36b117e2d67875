package core

import (
	"reflect"
	"testing"

	"spaces-wallet-tui/config"
	"spaces-wallet-tui/rpc"
	"spaces-wallet-tui/views/home"
	"spaces-wallet-tui/views/send"
	"spaces-wallet-tui/views/settings"
)

var (
	businessErr = &rpc.Error{Kind: rpc.KindBusiness, Code: -1, Message: "insufficient funds"}
	systemErr   = &rpc.Error{Kind: rpc.KindSystem, Message: "connection refused"}
)

func testConfig() config.Config {
	return config.Config{SpacedRPCURL: "http://127.0.0.1:7225", Network: "regtest", Wallet: "default"}
}

// loaded returns a reducer with "default" loaded on Home and any initial fetches drained.
func loaded(t *testing.T) *Main {
	t.Helper()
	m := NewMain(testConfig(), nil)
	m.Update(ListWalletsResult{Wallets: []string{"default", "alice"}})
	m.Update(WalletLoadResult{Wallet: "default"})
	if m.Screen() != ScreenHome {
		t.Fatalf("screen = %v, want Home", m.Screen())
	}
	return m
}

func assertCommands(t *testing.T, e Effect, want ...Command) {
	t.Helper()
	if len(want) == 0 && len(e.Commands) == 0 {
		return
	}
	if !reflect.DeepEqual(e.Commands, want) {
		t.Fatalf("commands = %#v\nwant %#v", e.Commands, want)
	}
}

func TestInit(t *testing.T) {
	m := NewMain(testConfig(), nil)
	assertCommands(t, m.Init(), GetServerInfo{}, ListWallets{})
}

func TestLoadWallet(t *testing.T) {
	m := NewMain(testConfig(), nil)

	e := m.Update(ListWalletsResult{Wallets: []string{"default"}})
	assertCommands(t, e, LoadWallet{Wallet: "default"})

	e = m.Update(WalletLoadResult{Wallet: "default"})
	assertCommands(t, e,
		GetWalletInfo{Wallet: "default"},
		GetWalletBalance{Wallet: "default"},
		GetWalletSpaces{Wallet: "default"},
		GetWalletTransactions{Wallet: "default", Count: home.PageSize},
	)
	if m.Screen() != ScreenHome {
		t.Errorf("screen = %v, want Home", m.Screen())
	}
}

func TestListWalletsWithoutSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Wallet = "missing"
	m := NewMain(cfg, nil)

	e := m.Update(ListWalletsResult{Wallets: []string{"default"}})
	assertCommands(t, e)
	if m.Screen() != ScreenSettings {
		t.Errorf("screen = %v, want Settings", m.Screen())
	}
}

func TestListWalletsRetry(t *testing.T) {
	m := NewMain(testConfig(), nil)
	e := m.Update(ListWalletsResult{Err: systemErr})
	assertCommands(t, e, ListWallets{Delay: ListWalletsRetry})
	if m.Banner() != "connection refused" {
		t.Errorf("banner = %q", m.Banner())
	}
}

func TestListWalletsPrunes(t *testing.T) {
	m := loaded(t)
	m.Update(ListWalletsResult{Wallets: []string{"alice"}})
	if m.Wallets().Contains("default") {
		t.Fatal("default still cached")
	}
	if m.Wallets().CurrentLabel() != "" {
		t.Errorf("current = %q, want none", m.Wallets().CurrentLabel())
	}
}

func TestWalletLoadStale(t *testing.T) {
	m := loaded(t)
	m.Update(NavigateTo{Route: RouteSend{}})
	e := m.Update(WalletLoadResult{Wallet: "alice"})
	assertCommands(t, e)
	if m.Screen() != ScreenSend {
		t.Errorf("screen = %v, want Send", m.Screen())
	}
}

func TestWalletLoadError(t *testing.T) {
	m := NewMain(testConfig(), nil)
	m.Update(ListWalletsResult{Wallets: []string{"default"}})
	m.Update(WalletLoadResult{Wallet: "default", Err: businessErr})
	if m.Screen() != ScreenSettings {
		t.Fatalf("screen = %v, want Settings", m.Screen())
	}
	if m.settings.Error() != "insufficient funds" {
		t.Errorf("settings error = %q", m.settings.Error())
	}
}

func TestTick(t *testing.T) {
	t.Run("without wallet", func(t *testing.T) {
		m := NewMain(testConfig(), nil)
		assertCommands(t, m.Update(Tick{}), GetServerInfo{})
	})

	t.Run("home", func(t *testing.T) {
		m := loaded(t)
		want := []Command{
			GetServerInfo{},
			GetWalletInfo{Wallet: "default"},
			GetWalletBalance{Wallet: "default"},
			GetWalletTransactions{Wallet: "default", Count: home.PageSize},
		}
		first := m.Update(Tick{})
		second := m.Update(Tick{})
		assertCommands(t, first, want...)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("ticks differ: %#v vs %#v", first, second)
		}
		if m.Screen() != ScreenHome {
			t.Errorf("tick changed screen to %v", m.Screen())
		}
	})

	t.Run("spaces with selection", func(t *testing.T) {
		m := loaded(t)
		m.Update(NavigateTo{Route: RouteSpace{SLabel: "bitcoin"}})
		assertCommands(t, m.Update(Tick{}),
			GetServerInfo{},
			GetWalletInfo{Wallet: "default"},
			GetWalletSpaces{Wallet: "default"},
			GetSpaceInfo{SLabel: "bitcoin"},
		)
	})

	t.Run("send", func(t *testing.T) {
		m := loaded(t)
		m.Update(NavigateTo{Route: RouteSend{}})
		assertCommands(t, m.Update(Tick{}), GetServerInfo{}, GetWalletInfo{Wallet: "default"})
	})
}

func TestNavigateFetches(t *testing.T) {
	tests := []struct {
		name   string
		route  Route
		screen Screen
		want   []Command
	}{
		{"send", RouteSend{}, ScreenSend, []Command{GetWalletSpaces{Wallet: "default"}}},
		{"receive", RouteReceive{}, ScreenReceive, []Command{
			GetWalletAddress{Wallet: "default", Kind: rpc.AddressCoin},
			GetWalletAddress{Wallet: "default", Kind: rpc.AddressSpace},
		}},
		{"spaces", RouteSpaces{}, ScreenSpaces, []Command{GetWalletSpaces{Wallet: "default"}}},
		{"space", RouteSpace{SLabel: "bitcoin"}, ScreenSpaces, []Command{GetSpaceInfo{SLabel: "bitcoin"}}},
		{"invalid space", RouteSpace{SLabel: "-bad"}, ScreenSpaces, []Command{GetWalletSpaces{Wallet: "default"}}},
		{"market", RouteMarket{}, ScreenMarket, []Command{GetWalletSpaces{Wallet: "default"}}},
		{"sign", RouteSign{}, ScreenSign, []Command{GetWalletSpaces{Wallet: "default"}}},
		{"settings", RouteSettings{}, ScreenSettings, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t)
			e := m.Update(NavigateTo{Route: tt.route})
			assertCommands(t, e, tt.want...)
			if m.Screen() != tt.screen {
				t.Errorf("screen = %v, want %v", m.Screen(), tt.screen)
			}
		})
	}
}

func TestNavigateSameScreenResets(t *testing.T) {
	m := loaded(t)
	m.Update(HomeMsg{Msg: home.BumpFeePress{Txid: "aa"}})
	if m.home.Txid() != "aa" {
		t.Fatalf("txid = %q", m.home.Txid())
	}

	m.Update(WalletBalanceResult{Wallet: "default", Balance: 42})
	m.Update(WalletTransactionsResult{Wallet: "default", Transactions: []rpc.TxInfo{{Txid: "aa"}}})
	m.Update(SpaceInfoResult{SLabel: "example", Space: &rpc.FullSpaceOut{
		Txid:     "bb",
		SpaceOut: rpc.SpaceOut{Space: &rpc.Space{Name: "@example"}},
	}})

	e := m.Update(NavigateTo{Route: RouteHome{}})
	assertCommands(t, e,
		GetWalletBalance{Wallet: "default"},
		GetWalletSpaces{Wallet: "default"},
		GetWalletTransactions{Wallet: "default", Count: home.PageSize},
	)
	if m.home.Txid() != "" {
		t.Errorf("home not reset, txid = %q", m.home.Txid())
	}

	w := m.Wallets().Data("default")
	if w.Balance != 42 {
		t.Errorf("balance = %d, want 42", w.Balance)
	}
	if len(w.Transactions) != 1 {
		t.Errorf("transactions = %d, want 1", len(w.Transactions))
	}
	if op, ok := m.SpaceCache().Outpoint("example"); !ok || op != "bb:0" {
		t.Errorf("space cache outpoint = %q %v, want bb:0", op, ok)
	}
}

func TestResultsKeyedByLabel(t *testing.T) {
	m := loaded(t)

	t.Run("unknown label dropped", func(t *testing.T) {
		m.Update(WalletBalanceResult{Wallet: "ghost", Balance: 5})
		if m.Wallets().Contains("ghost") {
			t.Fatal("ghost wallet created")
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		m.Update(WalletBalanceResult{Wallet: "default", Balance: 100})
		m.Update(WalletBalanceResult{Wallet: "default", Balance: 250})
		if got := m.Wallets().Data("default").Balance; got != 250 {
			t.Errorf("balance = %d, want 250", got)
		}
	})

	t.Run("failed fetch keeps value", func(t *testing.T) {
		m.Update(WalletBalanceResult{Wallet: "default", Err: businessErr})
		if got := m.Wallets().Data("default").Balance; got != 250 {
			t.Errorf("balance = %d, want 250", got)
		}
		if m.Banner() != "" {
			t.Errorf("banner = %q, want none", m.Banner())
		}
	})

	t.Run("result for previous wallet", func(t *testing.T) {
		m.Update(SettingsMsg{Msg: settings.SelectPress{Wallet: "alice"}})
		m.Update(WalletBalanceResult{Wallet: "default", Balance: 7})
		if got := m.Wallets().Data("default").Balance; got != 7 {
			t.Errorf("default balance = %d, want 7", got)
		}
		if got := m.Wallets().Data("alice").Balance; got != 0 {
			t.Errorf("alice balance = %d, want 0", got)
		}
	})
}

func TestWalletResults(t *testing.T) {
	m := loaded(t)
	m.Update(WalletInfoResult{Wallet: "default", Info: rpc.WalletInfo{SyncHeight: 90, Status: rpc.SyncStatus{State: rpc.SyncComplete}}})
	m.Update(WalletAddressResult{Wallet: "default", Kind: rpc.AddressCoin, Address: "bcrt1qcoin"})
	m.Update(WalletAddressResult{Wallet: "default", Kind: rpc.AddressSpace, Address: "bcrt1pspace"})
	m.Update(WalletTransactionsResult{Wallet: "default", Transactions: []rpc.TxInfo{{Txid: "aa"}}})

	w := m.Wallets().Data("default")
	if w.Tip != 90 || !w.Status.Complete() {
		t.Errorf("info = %d %+v", w.Tip, w.Status)
	}
	if w.CoinAddress.String() != "bcrt1qcoin" || w.SpaceAddress.String() != "bcrt1pspace" {
		t.Errorf("addresses = %q %q", w.CoinAddress.String(), w.SpaceAddress.String())
	}
	if len(w.Transactions) != 1 {
		t.Errorf("transactions = %d", len(w.Transactions))
	}
}

func TestWalletSpacesFillCache(t *testing.T) {
	m := loaded(t)
	out := rpc.FullSpaceOut{
		Txid: "ab",
		N:    1,
		SpaceOut: rpc.SpaceOut{Space: &rpc.Space{
			Name:     "@bitcoin",
			Covenant: rpc.Covenant{Type: rpc.CovenantTransfer, ExpireHeight: 500},
		}},
	}
	m.Update(WalletSpacesResult{Wallet: "default", Spaces: rpc.ListSpacesResponse{Owned: []rpc.FullSpaceOut{out}}})

	if !m.Wallets().Data("default").IsOwned("bitcoin") {
		t.Error("bitcoin not owned")
	}
	op, ok := m.SpaceCache().Outpoint("bitcoin")
	if !ok || op != "ab:1" {
		t.Errorf("outpoint = %q %v", op, ok)
	}
}

func TestSpaceInfoResult(t *testing.T) {
	m := loaded(t)
	m.Update(SpaceInfoResult{SLabel: "fresh"})
	if _, known := m.SpaceCache().Covenant("fresh"); !known {
		t.Error("unopened space not recorded")
	}

	m.Update(SpaceInfoResult{SLabel: "other", Err: systemErr})
	if m.SpaceCache().Contains("other") {
		t.Error("failed lookup cached")
	}
	if m.Banner() == "" {
		t.Error("system error did not set banner")
	}
}

func TestServerInfoClearsBanner(t *testing.T) {
	m := loaded(t)
	m.Update(ServerInfoResult{Err: systemErr})
	if m.Banner() == "" {
		t.Fatal("banner not set")
	}
	m.Update(ServerInfoResult{Info: rpc.ServerInfo{Chain: rpc.ChainInfo{Blocks: 99, Headers: 100}}})
	if m.Banner() != "" {
		t.Errorf("banner = %q", m.Banner())
	}
	if m.TipHeight() != 100 {
		t.Errorf("tip = %d, want 100", m.TipHeight())
	}
}

func TestSendCoins(t *testing.T) {
	m := loaded(t)
	m.Update(NavigateTo{Route: RouteSend{}})
	m.Update(SendMsg{Msg: send.RecipientInput{Value: "bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080"}})
	m.Update(SendMsg{Msg: send.AmountInput{Value: "1000"}})

	e := m.Update(SendMsg{Msg: send.Submit{}})
	assertCommands(t, e, SendCoins{
		Wallet:    "default",
		Recipient: "bcrt1qw508d6qejxtdg4y5r3zarvary0c5xw7kygt080",
		Amount:    1000,
	})
}

func TestActionsWithoutWallet(t *testing.T) {
	m := NewMain(testConfig(), nil)
	e := m.Update(HomeMsg{Msg: home.BumpFeePress{Txid: "aa"}})
	assertCommands(t, e)
	m.Update(HomeMsg{Msg: home.FeeRateInput{Value: "3"}})
	assertCommands(t, m.Update(HomeMsg{Msg: home.BumpFeeSubmit{}}))
}

func TestTxResultErrors(t *testing.T) {
	t.Run("business goes to screen", func(t *testing.T) {
		m := loaded(t)
		m.Update(NavigateTo{Route: RouteSend{}})
		m.Update(TxResult{Op: OpSendCoins, Wallet: "default", Err: businessErr})
		if m.send.Error() != "insufficient funds" {
			t.Errorf("send error = %q", m.send.Error())
		}
		if m.Banner() != "" {
			t.Errorf("banner = %q, want none", m.Banner())
		}
		if m.Screen() != ScreenSend {
			t.Errorf("screen = %v, want Send", m.Screen())
		}
	})

	t.Run("business leaves banner", func(t *testing.T) {
		m := loaded(t)
		m.Update(TxResult{Op: OpBid, Wallet: "default", Err: systemErr})
		m.Update(TxResult{Op: OpSendCoins, Wallet: "default", Err: businessErr})
		if m.Banner() != "connection refused" {
			t.Errorf("banner = %q, want connection refused", m.Banner())
		}
		if m.send.Error() != "insufficient funds" {
			t.Errorf("send error = %q", m.send.Error())
		}
	})

	t.Run("system goes to banner", func(t *testing.T) {
		m := loaded(t)
		m.Update(TxResult{Op: OpBid, Wallet: "default", Err: businessErr})
		m.Update(TxResult{Op: OpBid, Wallet: "default", Err: systemErr})
		if m.spacesScreen.Error() != "insufficient funds" {
			t.Errorf("spaces error = %q, want insufficient funds", m.spacesScreen.Error())
		}
		if m.Banner() != "connection refused" {
			t.Errorf("banner = %q", m.Banner())
		}
	})
}

func TestTxResultSuccess(t *testing.T) {
	t.Run("send returns home", func(t *testing.T) {
		m := loaded(t)
		m.Update(NavigateTo{Route: RouteSend{}})
		m.Update(TxResult{Op: OpSendCoins, Wallet: "default"})
		if m.Screen() != ScreenHome {
			t.Errorf("screen = %v, want Home", m.Screen())
		}
	})

	t.Run("bump refreshes transactions", func(t *testing.T) {
		m := loaded(t)
		e := m.Update(TxResult{Op: OpBumpFee, Wallet: "default"})
		assertCommands(t, e, GetWalletTransactions{Wallet: "default", Count: home.PageSize})
	})

	t.Run("sell shows listing", func(t *testing.T) {
		m := loaded(t)
		m.Update(NavigateTo{Route: RouteMarket{}})
		l := rpc.Listing{Space: "@bitcoin", Price: 1000, Seller: "bcrt1q", Signature: "00"}
		m.Update(TxResult{Op: OpSell, Wallet: "default", Listing: &l})
		got, ok := m.market.Listing()
		if !ok || got != l {
			t.Errorf("listing = %+v %v", got, ok)
		}
		if m.Screen() != ScreenMarket {
			t.Errorf("screen = %v, want Market", m.Screen())
		}
	})

	t.Run("sign saves event", func(t *testing.T) {
		m := loaded(t)
		ev := rpc.NostrEvent{ID: "id", Kind: 1, Tags: [][]string{}, Content: "hi", Sig: "sig"}
		e := m.Update(TxResult{Op: OpSign, Wallet: "default", Event: &ev})
		if len(e.Commands) != 1 {
			t.Fatalf("commands = %#v", e.Commands)
		}
		save, ok := e.Commands[0].(SaveFile)
		if !ok || save.Purpose != FileSignedEvent || save.Contents == "" {
			t.Errorf("command = %#v", e.Commands[0])
		}
	})
}

func TestSettingsActions(t *testing.T) {
	t.Run("select wallet", func(t *testing.T) {
		m := loaded(t)
		e := m.Update(SettingsMsg{Msg: settings.SelectPress{Wallet: "alice"}})
		cfg := testConfig()
		cfg.Wallet = "alice"
		assertCommands(t, e, SaveConfig{Config: cfg}, ListWallets{})
		if m.Wallets().CurrentLabel() != "alice" {
			t.Errorf("current = %q", m.Wallets().CurrentLabel())
		}
	})

	t.Run("create wallet", func(t *testing.T) {
		m := loaded(t)
		m.Update(SettingsMsg{Msg: settings.CreatePress{}})
		m.Update(SettingsMsg{Msg: settings.NameInput{Value: "savings"}})
		e := m.Update(SettingsMsg{Msg: settings.CreateSubmit{}})
		assertCommands(t, e, CreateWallet{Wallet: "savings"})

		e = m.Update(WalletCreateResult{Wallet: "savings"})
		cfg := testConfig()
		cfg.Wallet = "savings"
		assertCommands(t, e, SaveConfig{Config: cfg}, ListWallets{})
	})

	t.Run("import from file", func(t *testing.T) {
		m := loaded(t)
		assertCommands(t, m.Update(SettingsMsg{Msg: settings.ImportPress{}}), PickFile{Purpose: FileWalletImport})
		e := m.Update(FileLoaded{Purpose: FileWalletImport, Contents: `{"label":"x"}`})
		assertCommands(t, e, ImportWallet{Contents: `{"label":"x"}`})
		assertCommands(t, m.Update(FileLoaded{Purpose: FileWalletImport, Cancelled: true}))
	})

	t.Run("export", func(t *testing.T) {
		m := loaded(t)
		e := m.Update(ExportResult{Wallet: "default", Contents: "{}"})
		assertCommands(t, e, SaveFile{Purpose: FileWalletExport, Name: "default-wallet.json", Contents: "{}"})
		m.Update(FileSaved{Purpose: FileWalletExport, Path: "/tmp/default-wallet.json"})
		if m.settings.Notice() == "" {
			t.Error("no export notice")
		}
	})

	t.Run("reset backend", func(t *testing.T) {
		m := loaded(t)
		assertCommands(t, m.Update(SettingsMsg{Msg: settings.ResetBackendPress{}}), ConfirmResetBackend{})
		e := m.Update(ResetBackendConfirmed{})
		assertCommands(t, e, Disconnect{})
		if e.Transition == nil || e.Transition.Phase != PhaseSetup {
			t.Errorf("transition = %+v", e.Transition)
		}
	})
}

func TestMainPollInterval(t *testing.T) {
	m := loaded(t)
	if got := m.PollInterval(); got != FastPoll {
		t.Errorf("before sync = %v, want %v", got, FastPoll)
	}

	m.Update(ServerInfoResult{Info: rpc.ServerInfo{Chain: rpc.ChainInfo{Headers: 100}}})
	m.Update(WalletInfoResult{Wallet: "default", Info: rpc.WalletInfo{SyncHeight: 100, Status: rpc.SyncStatus{State: rpc.SyncComplete}}})
	if got := m.PollInterval(); got != SlowPoll {
		t.Errorf("synced = %v, want %v", got, SlowPoll)
	}
	if m.SyncStatus() != "" {
		t.Errorf("sync status = %q", m.SyncStatus())
	}

	m.Update(ServerInfoResult{Err: systemErr})
	if got := m.PollInterval(); got != FastPoll {
		t.Errorf("disconnected = %v, want %v", got, FastPoll)
	}
}
