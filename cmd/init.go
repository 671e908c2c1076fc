package cmd

var (
	configPath string

	page       int
	query      string
	categories []string
	sortBy     string
	ascending  bool
	favorites  bool
	popular    bool

	gallery string
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config file",
	)
}

func initSearchFlags() {
	searchCmd.Flags().IntVarP(
		&page,
		"page",
		"p",
		1,
		"specifies the listing page to fetch",
	)
	searchCmd.Flags().StringVarP(
		&query,
		"query",
		"q",
		"",
		"specifies the search text",
	)
	searchCmd.Flags().StringSliceVarP(
		&categories,
		"categories",
		"C",
		nil,
		"specifies the categories to filter by: Manga, Doujinshi, Illustration",
	)
	searchCmd.Flags().StringVarP(
		&sortBy,
		"sort",
		"s",
		"",
		"specifies the sort option: title, pages, published, uploaded, popularity",
	)
	searchCmd.Flags().BoolVarP(
		&ascending,
		"ascending",
		"a",
		false,
		"sort in ascending order",
	)
	searchCmd.Flags().BoolVarP(
		&favorites,
		"favorites",
		"f",
		false,
		"only list your favorites, requires credentials in the config",
	)
	searchCmd.Flags().BoolVarP(
		&popular,
		"popular",
		"P",
		false,
		"list galleries by popularity",
	)

	searchCmd.MarkFlagsMutuallyExclusive("popular", "sort")
}

func initFavoritesFlags() {
	favoritesCmd.Flags().IntVarP(
		&page,
		"page",
		"p",
		1,
		"specifies the favorites page to fetch",
	)
}

func initDownloadFlags() {
	downloadCmd.Flags().StringVarP(
		&gallery,
		"gallery",
		"g",
		"",
		"specifies the gallery to download, as a /g/{id}/{key} URL or id/key pair",
	)

	_ = downloadCmd.MarkFlagRequired("gallery")
}
