package course

// 全 96 条赛道与速记别名，杯赛顺序与游戏内一致。
// 速记别名来自 mk8dx 社区惯用写法 (https://github.com/sheat-git/mk8dx.py)。
var courseData = []struct {
	name    string
	series  Series
	aliases []string
}{
	// キノコカップ
	{"マリオカートスタジアム", SeriesNew, []string{"mks", "ﾏﾘｵｶｰﾄｽﾀｼﾞｱﾑ", "ﾏﾘｶｽ"}},
	{"ウォーターパーク", SeriesNew, []string{"wp", "ｳｫｰﾀﾊﾟｰｸ", "ｦｰﾀｰﾊﾟｰｸ", "ｳｫﾀﾊﾟ", "ｦﾀﾊﾟ", "ｵﾀﾊﾟ"}},
	{"スイーツキャニオン", SeriesNew, []string{"ssc", "ｽｲｰﾂｷｬﾆｵﾝ", "ｽｲｷｬﾆ"}},
	{"ドッスンいせき", SeriesNew, []string{"tr", "ﾄﾞｯｽﾝｲｾｷ", "ﾄﾞｯｽﾝ", "ｲｾｷ", "ﾄﾞｯｽﾝ遺跡", "遺跡"}},
	// フラワーカップ
	{"マリオサーキット", SeriesNew, []string{"mc", "ﾏﾘｵｻｰｷｯﾄ", "ﾏﾘｻ", "新ﾏﾘｻ", "ｼﾝﾏﾘｻ"}},
	{"キノピオハーバー", SeriesNew, []string{"th", "ｷﾉﾋﾟｵﾊｰﾊﾞｰ", "ﾊｰﾊﾞｰ"}},
	{"ねじれマンション", SeriesNew, []string{"tm", "ﾈｼﾞﾚﾏﾝｼｮﾝ", "ﾈｼﾞﾏﾝ", "ﾈｼﾞﾚ", "ﾈｼﾞｼｮﾝ", "ﾈｼﾞ", "ﾈｼﾞﾈｼﾞ", "ﾏﾝｼｮﾝ"}},
	{"ヘイホーこうざん", SeriesNew, []string{"sgf", "ﾍｲﾎｰｺｳｻﾞﾝ", "ﾍｲﾎｰ鉱山", "ﾍｲｺｰ", "ﾍｲｺｳ", "ﾍｲ鉱"}},
	// スターカップ
	{"サンシャインくうこう", SeriesNew, []string{"sa", "ｻﾝｼｬｲﾝｸｳｺｳ", "空港", "ｸｳｺｳ", "ｻﾝｼｬｲﾝ"}},
	{"ドルフィンみさき", SeriesNew, []string{"ds", "ﾄﾞﾙﾌｨﾝﾐｻｷ", "ﾄﾞﾙﾐ", "ﾐｻｷ", "ﾄﾞﾙﾌｨﾝ岬", "岬"}},
	{"エレクトロドリーム", SeriesNew, []string{"ed", "ｴﾚｸﾄﾛﾄﾞﾘｰﾑ", "ｴﾚﾄﾞ", "ｴﾚﾄﾞﾘ"}},
	{"ワリオスノーマウンテン", SeriesNew, []string{"mw", "ﾜﾘｵｽﾉｰﾏｳﾝﾃﾝ", "ﾜﾘｽﾉ", "ﾕｷﾔﾏ", "雪山", "ｽﾉ", "ﾕｷﾔﾏｳﾝﾃﾝ"}},
	// スペシャルカップ
	{"スカイガーデン", SeriesNew, []string{"cc", "ｽｶｲｶﾞｰﾃﾞﾝ", "ｽｶｶﾞ"}},
	{"ホネホネさばく", SeriesNew, []string{"bdd", "ﾎﾈﾎﾈｻﾊﾞｸ", "ﾎﾈｻﾊﾞ", "ﾎﾈﾎﾈ"}},
	{"クッパキャッスル", SeriesNew, []string{"bc", "ｸｯﾊﾟｷｬｯｽﾙ", "ｸﾊﾟｷｬ", "ｸｷｬﾊﾟ", "ｸｯｷｬﾊﾟｯｽﾙ"}},
	{"レインボーロード", SeriesNew, []string{"rr", "ﾚｲﾝﾎﾞｰﾛｰﾄﾞ", "新虹", "ｼﾝﾆｼﾞ"}},
	// たまごカップ
	{"ヨッシーサーキット", SeriesGC, []string{"dyc", "yc", "ﾖｯｼｰｻｰｷｯﾄ", "ﾖｼｻ"}},
	{"エキサイトバイク", SeriesNew, []string{"dea", "ea", "ｴｷｻｲﾄﾊﾞｲｸ", "ｴｷﾊﾞ"}},
	{"ドラゴンロード", SeriesNew, []string{"ddd", "dd", "ﾄﾞﾗｺﾞﾝﾛｰﾄﾞ", "ﾄﾞﾗﾛ"}},
	{"ミュートシティ", SeriesNew, []string{"dmc", "ﾐｭｰﾄｼﾃｨ", "ﾐｭｰﾄ"}},
	// どうぶつカップ
	{"ベビィパーク", SeriesGC, []string{"dbp", "bp", "ﾍﾞﾋﾞｨﾊﾟｰｸ", "ﾍﾞﾋﾞｰﾊﾟｰｸ", "ﾍﾞﾋﾞﾊﾟ"}},
	{"チーズランド", SeriesGBA, []string{"dcl", "cl", "ﾁｰｽﾞﾗﾝﾄﾞ", "ﾁｰｽﾞ"}},
	{"ネイチャーロード", SeriesNew, []string{"dww", "ww", "ﾈｲﾁｬｰﾗﾝﾄﾞ", "ﾈｲﾁｬｰ", "ﾅﾁｭﾚ"}},
	{"どうぶつの森", SeriesNew, []string{"dac", "ac", "ﾄﾞｳﾌﾞﾂﾉﾓﾘ", "ﾄﾞｳﾓﾘ", "ﾌﾞﾂﾓﾘ", "ﾄﾞｳ森", "ﾌﾞﾂ森", "ﾄﾞｳﾌﾞﾂﾉ森"}},
	// こうらカップ
	{"モーモーカントリー", SeriesWii, []string{"rmmm", "mmm", "ﾓｰﾓｰｶﾝﾄﾘｰ", "ﾓﾓｶﾝ", "ﾓｰﾓｰ"}},
	{"マリオサーキット", SeriesGBA, []string{"rmc", "gba", "ｸﾞﾊﾞ", "gbaﾏﾘｵｻｰｷｯﾄ", "gbaﾏﾘｻ"}},
	{"プクプクビーチ", SeriesDS, []string{"rccb", "ccb", "ﾌﾟｸﾌﾟｸﾋﾞｰﾁ", "ﾌﾟｸﾌﾟｸ", "ﾌﾟｸﾋﾞ"}},
	{"キノピオハイウェイ", SeriesN64, []string{"rtt", "tt", "ｷﾉﾋﾟｵﾊｲｳｪｲ", "ﾊｲｳｪｲ"}},
	// バナナカップ
	{"カラカラさばく", SeriesGC, []string{"rddd", "ｶﾗｶﾗｻﾊﾞｸ", "ｶﾗｻﾊﾞ", "ｻﾊﾞｸ", "gcｶﾗ", "gcｶﾗｻﾊﾞ", "gcｻﾊﾞ"}},
	{"ドーナツへいや3", SeriesSFC, []string{"rdp3", "rdp", "dp3", "ﾄﾞｰﾅﾂﾍｲﾔ", "ﾍｲﾔ", "ﾄﾞｰﾅﾂ平野", "平野"}},
	{"ピーチサーキット", SeriesN64, []string{"rrry", "rry", "ﾋﾟｰﾁｻｰｷｯﾄ", "ﾋﾟﾁｻ"}},
	{"DKジャングル", Series3DS, []string{"rdkj", "dk", "dkj", "dkｼﾞｬﾝｸﾞﾙ", "ｼﾞｬﾝｸﾞﾙ"}},
	// このはカップ
	{"ワリオスタジアム", SeriesDS, []string{"rws", "ws", "ﾜﾘｵｽﾀｼﾞｱﾑ", "ﾜﾘｽﾀ"}},
	{"シャーベットランド", SeriesGC, []string{"rsl", "sl", "ｼｬｰﾍﾞｯﾄﾗﾝﾄﾞ", "ｼｬｰﾍﾞｯﾄ", "ｼｬﾍﾞﾗﾝ", "ｼｬﾍﾞ"}},
	{"ミュージックパーク", Series3DS, []string{"rmp", "mp", "ﾐｭｰｼﾞｯｸﾊﾟｰｸ", "ﾐｭｰﾊﾟ"}},
	{"ヨッシーバレー", SeriesN64, []string{"ryv", "yv", "ﾖｯｼｰﾊﾞﾚｰ", "ﾖｼﾊﾞ"}},
	// サンダーカップ
	{"チクタクロック", SeriesDS, []string{"rttc", "ttc", "ﾁｸﾀｸﾛｯｸ", "ﾁｸﾀｸ"}},
	{"パックンスライダー", Series3DS, []string{"rpps", "pps", "ﾊﾟｯｸﾝｽﾗｲﾀﾞｰ", "ﾊﾟｸｽﾗ", "ﾊﾟｯｸﾝ"}},
	{"グラグラかざん", SeriesWii, []string{"rgv", "gv", "ｸﾞﾗｸﾞﾗｶｻﾞﾝ", "ｸﾞﾗｸﾞﾗ", "ｶｻﾞﾝ"}},
	{"レインボーロード", SeriesN64, []string{"rrrd", "rrd", "64ﾚｲﾝﾎﾞｰﾛｰﾄﾞ", "64ﾆｼﾞ", "64虹", "ﾛｸﾖﾝ"}},
	// ゼルダカップ
	{"ワリオこうざん", SeriesWii, []string{"dwgm", "wgm", "ﾜﾘｵｺｳｻﾞﾝ", "ﾜﾘｺｳ", "ﾜﾘｵ鉱山", "ﾜﾘ鉱"}},
	{"レインボーロード", SeriesSFC, []string{"drr", "sfcﾆｼﾞ", "sfcﾚｲﾝﾎﾞｰﾛｰﾄﾞ", "sfc虹", "sfc"}},
	{"ツルツルツイスター", SeriesNew, []string{"diio", "iio", "ﾂﾙﾂﾙﾂｲｽﾀｰ", "ﾂﾂﾂ", "ﾂﾙﾂﾙ"}},
	{"ハイラルサーキット", SeriesNew, []string{"dhc", "hc", "ﾊｲﾗﾙｻｰｷｯﾄ", "ﾊｲﾗﾙ"}},
	// ベルカップ
	{"ネオクッパシティ", Series3DS, []string{"dnbc", "nbc", "ﾈｵｸｯﾊﾟｼﾃｨ", "ﾈｵﾊﾟ", "ﾈｵｸｯﾊﾟ"}},
	{"リボンロード", SeriesGBA, []string{"drir", "rir", "ﾘﾎﾞﾝﾛｰﾄﾞ", "ﾘﾎﾞﾝ"}},
	{"リンリンメトロ", SeriesNew, []string{"dsbs", "sbs", "ﾘﾝﾘﾝﾒﾄﾛ", "ﾘﾝﾒﾄ"}},
	{"ビッグブルー", SeriesNew, []string{"dbb", "bb", "ﾋﾞｯｸﾞﾌﾞﾙｰ"}},
	// パワフルカップ
	{"パリプロムナード", SeriesTour, []string{"bpp", "pp", "paris", "ﾊﾟﾘﾌﾟﾛﾑﾅｰﾄﾞ", "ﾊﾟﾘ"}},
	{"キノピオサーキット", Series3DS, []string{"btc", "tc", "ｷﾉﾋﾟｵｻｰｷｯﾄ", "ｷﾉｻ"}},
	{"チョコマウンテン", SeriesN64, []string{"bcmo", "bcm64", "bchm", "cmo", "chm", "cm64", "ﾁｮｺﾏｳﾝﾃﾝ", "ﾁｮｺ", "ﾁｮｺﾏ"}},
	{"ココナッツモール", SeriesWii, []string{"bcma", "bcom", "bcmw", "cma", "com", "cmw", "ｺｺﾅｯﾂﾓｰﾙ", "ｺｺﾓ", "ｺｺﾅｯﾂ", "ﾅｯﾂ"}},
	// まねきネコカップ
	{"トーキョースクランブル", SeriesTour, []string{"btb", "tb", "tokyo", "ﾄｰｷｮｰｽｸﾗﾝﾌﾞﾙ", "ｽｸﾗﾝﾌﾞﾙ", "ﾄｰｷｮｰ", "ﾄｳｷｮｳ", "ﾄｰｷｮｳ", "ﾄｳｷｮｰ", "東京"}},
	{"キノコリッジウェイ", SeriesDS, []string{"bsr", "sr", "ｷﾉｺﾘｯｼﾞｳｪｲ", "ｷﾉｺﾘｯｼﾞ", "ﾘｯｼﾞｳｪｲ", "ｷﾉｺﾘ", "ｷｺﾘ", "ﾘｯｼﾞ"}},
	{"スカイガーデン", SeriesGBA, []string{"bsg", "sg", "gbaｽｶｲｶﾞｰﾃﾞﾝ", "gbaｽｶ", "ｸﾞﾊﾞｽｶ", "ｸﾞﾊﾞｽｶｶﾞ", "gbaｽｶｶﾞ"}},
	{"ニンニンドージョー", SeriesNew, []string{"bnh", "nh", "ﾆﾝﾆﾝﾄﾞｰｼﾞｮｰ", "ﾆﾝｼﾞｮｰ", "ﾆﾝﾆﾝ"}},
	// カブカップ
	{"ニューヨークドリーム", SeriesTour, []string{"bnym", "nym", "ﾆｭｰﾖｰｸﾄﾞﾘｰﾑ", "ﾆｭｰﾖｰｸ", "ﾆｭｰﾄﾞﾘ", "ny"}},
	{"マリオサーキット3", SeriesSFC, []string{"bmc3", "mc3", "ﾏﾘｵｻｰｷｯﾄ3", "ﾏﾘｻ3", "sfcﾏﾘｻ", "sfcﾏﾘｵｻｰｷｯﾄ", "sfcﾏﾘｻ3", "sfcﾏﾘｵｻｰｷｯﾄ3"}},
	{"カラカラさばく", SeriesN64, []string{"bkd", "kd", "64ｶﾗｻﾊﾞ", "64ｶﾗ", "64ｻﾊﾞ"}},
	{"ワルイージピンボール", SeriesDS, []string{"bwp", "ﾜﾙｲｰｼﾞﾋﾟﾝﾎﾞｰﾙ", "ﾜﾙﾋﾟﾝ", "ﾋﾟﾝﾎﾞｰﾙ"}},
	// プロペラカップ
	{"シドニーサンシャイン", SeriesTour, []string{"bss", "ss", "bsys", "sys", "ｼﾄﾞﾆｰｻﾝｼｬｲﾝ", "ｼﾄﾞﾆｰ"}},
	{"スノーランド", SeriesGBA, []string{"bsl", "ｽﾉｰﾗﾝﾄﾞ", "ｽﾉﾗﾝ"}},
	{"キノコキャニオン", SeriesWii, []string{"bmg", "mg", "ｷﾉｺｷｬﾆｵﾝ", "ｷﾉｷｬﾆ", "ｷｬﾆｵﾝ"}},
	{"アイスビルディング", SeriesNew, []string{"bshs", "shs", "ｱｲｽﾋﾞﾙﾃﾞｨﾝｸﾞ", "ｱｲｽ"}},
	// ゴロいわカップ
	{"ロンドンアベニュー", SeriesTour, []string{"bll", "ll", "ﾛﾝﾄﾞﾝｱﾍﾞﾆｭｰ", "ﾛﾝﾄﾞﾝ"}},
	{"テレサレイク", SeriesGBA, []string{"bbl", "bl", "ﾃﾚｻﾚｲｸ", "ﾚｲｸ", "ﾃﾚｲｸ"}},
	{"ロックロックマウンテン", Series3DS, []string{"brrm", "rrm", "ﾛｯｸﾛｯｸﾏｳﾝﾃﾝ", "ﾛｸﾏ", "ﾛｯｸ", "岩山", "ﾛｯｸﾛｯｸ"}},
	{"メイプルツリーハウス", SeriesWii, []string{"bmt", "mt", "ﾒｲﾌﾟﾙﾂﾘｰﾊｳｽ", "ﾒｲﾌﾟﾙ"}},
	// ムーンカップ
	{"ベルリンシュトラーセ", SeriesTour, []string{"bbb", "ﾍﾞﾙﾘﾝｼｭﾄﾗｰｾ", "ﾍﾞﾙﾘﾝ"}},
	{"ピーチガーデン", SeriesDS, []string{"bpg", "pg", "ﾋﾟｰﾁｶﾞｰﾃﾞﾝ", "ﾋﾟﾁｶﾞ", "ｶﾞｰﾃﾞﾝ"}},
	{"メリーメリーマウンテン", SeriesNew, []string{"bmm", "mm", "ﾒﾘｰﾒﾘｰﾏｳﾝﾃﾝ", "ﾒﾘﾏ", "ﾒﾘｰﾒﾘｰ", "ﾒﾘｰ", "ﾒﾘﾔﾏ", "ﾒﾘ山"}},
	{"レインボーロード", Series3DS, []string{"brr7", "rr7", "3dsﾆｼﾞ", "3ds虹", "7ﾆｼﾞ", "7虹"}},
	// フルーツカップ
	{"アムステルダムブルーム", SeriesTour, []string{"bad", "ad", "amsterdam", "ｱﾑｽﾃﾙﾀﾞﾑﾌﾞﾙｰﾑ", "ｱﾑｽﾃﾙﾀﾞﾑ", "ｱﾑｽ", "ﾌﾞﾙｰﾑ"}},
	{"リバーサイドパーク", SeriesGBA, []string{"brp", "rp", "ﾘﾊﾞｰｻｲﾄﾞﾊﾟｰｸ", "ﾘﾊﾞｰｻｲﾄﾞ", "ﾘﾊﾞﾊﾟ"}},
	{"DKスノーボードクロス", SeriesWii, []string{"bdks", "dks", "summit", "dkｽﾉｰﾎﾞｰﾄﾞｸﾛｽ", "ｽﾉｰﾎﾞｰﾄﾞｸﾛｽ", "ｽﾉﾎﾞｸﾛｽ", "ｽﾉﾎﾞ"}},
	{"ヨッシーアイランド", SeriesNew, []string{"byi", "yi", "ﾖｯｼｰｱｲﾗﾝﾄﾞ", "ﾖｼｱｲ"}},
	// ブーメランカップ
	{"バンコクラッシュ", SeriesTour, []string{"bbr", "br", "bangkok", "ﾊﾞﾝｺｸﾗｯｼｭ", "ﾊﾞﾝｺｸ"}},
	{"マリオサーキット", SeriesDS, []string{"bmc", "dsﾏﾘｵｻｰｷｯﾄ", "dsﾏﾘｻ"}},
	{"ワルイージスタジアム", SeriesGC, []string{"bws", "ﾜﾙｲｰｼﾞｽﾀｼﾞｱﾑ", "ﾜﾙｽﾀ"}},
	{"シンガポールスプラッシュ", SeriesTour, []string{"bssy", "ssy", "bsis", "sis", "singapore", "ｼﾝｶﾞﾎﾟｰﾙｽﾌﾟﾗｯｼｭ", "ｼﾝｶﾞﾎﾟｰﾙ"}},
	// ハネカップ
	{"アテネポリス", SeriesTour, []string{"bada", "ada", "athens", "ｱﾃﾈﾎﾟﾘｽ", "ｱﾃﾈ"}},
	{"デイジークルーザー", SeriesGC, []string{"bdc", "dc", "ﾃﾞｲｼﾞｰｸﾙｰｻﾞｰ", "ﾃﾞｲｸﾙ"}},
	{"ムーンリッジ&ハイウェイ", SeriesWii, []string{"bmh", "mh", "ﾑｰﾝﾘｯｼﾞ", "ﾑﾝﾊｲ", "ﾑｰﾝﾊｲ"}},
	{"シャボンロード", SeriesNew, []string{"bscs", "scs", "ｼｬﾎﾞﾝﾛｰﾄﾞ", "ｼｬﾎﾞﾝ", "ｼｬﾎﾞﾛ"}},
	// チェリーカップ
	{"ロサンゼルスコースト", SeriesTour, []string{"blal", "lal", "losangeles", "los", "ﾛｻﾝｾﾞﾙｽｺｰｽﾄ", "ﾛｻﾝｾﾞﾙｽ", "ﾛｽ"}},
	{"サンセットこうや", SeriesGBA, []string{"bsw", "sw", "ｻﾝｾｯﾄｺｳﾔ", "ｻﾝｾｯﾄ", "ｺｳﾔ", "ｻﾝｾ"}},
	{"ノコノコみさき", SeriesWii, []string{"bkc", "kc", "ﾉｺﾉｺﾐｻｷ", "ﾉｺﾉｺ", "ﾉｺﾐｻ", "ﾉｺﾐ"}},
	{"バンクーバーバレー", SeriesTour, []string{"bvv", "vv", "vancouver", "ﾊﾞﾝｸｰﾊﾞｰﾊﾞﾚｰ", "ﾊﾞﾝｸｰﾊﾞｰ"}},
	// ドングリカップ
	{"ローマアバンティ", SeriesTour, []string{"bra", "ra", "rome", "ﾛｰﾏｱﾊﾞﾝﾃｨ", "ﾛｰﾏ"}},
	{"DKマウンテン", SeriesGC, []string{"bdkm", "dkm", "dkﾏｳﾝﾃﾝ", "dkﾔﾏ", "dk山"}},
	{"デイジーサーキット", SeriesWii, []string{"bdci", "dci", "ﾃﾞｲｼﾞｰｻｰｷｯﾄ", "ﾃﾞｲｻ"}},
	{"パックンしんでん", SeriesNew, []string{"bppc", "ppc", "ﾊﾟｯｸﾝｼﾝﾃﾞﾝ", "ﾊﾟｸｼﾝ", "ｼﾝﾃﾞﾝ"}},
	// トゲゾーカップ
	{"マドリードグランデ", SeriesTour, []string{"bmd", "md", "madrid", "ﾏﾄﾞﾘｰﾄﾞｸﾞﾗﾝﾃﾞ", "ﾏﾄﾞﾘｰﾄﾞ"}},
	{"ロゼッタプラネット", Series3DS, []string{"briw", "riw", "ﾛｾﾞｯﾀﾌﾟﾗﾈｯﾄ", "ﾛｾﾞﾌﾟﾗ"}},
	{"クッパじょう3", SeriesSFC, []string{"bbc3", "bc3", "ｸｯﾊﾟｼﾞｮｳ3", "ｸｯﾊﾟｼﾞｮｳ", "ｸｯﾊﾟ城"}},
	{"レインボーロード", SeriesWii, []string{"brr", "brrw", "rrw", "wiiﾆｼﾞ", "wiiﾚｲﾝﾎﾞｰﾛｰﾄﾞ", "wii虹", "ｳｨｰﾆｼﾞ"}},
}
