package config

// Options holds the engine's compile-time-fixed tunables (spec.md §3). All
// generators take an explicit *Options instead of reading ambient globals;
// DefaultOptions() returns the default values.
type Options struct {
	MetaBits                 int `yaml:"meta_bits"`
	MetaTrimTitle            int `yaml:"meta_trim_title"`
	MetaTrimExtra            int `yaml:"meta_trim_extra"`
	MetaNgramSizeTitle       int `yaml:"meta_ngram_size_title"`
	MetaNgramSizeExtraText   int `yaml:"meta_ngram_size_extra_text"`
	MetaNgramSizeExtraBinary int `yaml:"meta_ngram_size_extra_binary"`

	TextNgramSize int `yaml:"text_ngram_size"`
	TextBits      int `yaml:"text_bits"`

	ImageBits int `yaml:"image_bits"`
	ImageTrim int `yaml:"image_trim"`

	MixedBits int `yaml:"mixed_bits"`

	DataBits         int `yaml:"data_bits"`
	DataAvgChunkSize int `yaml:"data_avg_chunk_size"`

	AudioBits int `yaml:"audio_bits"`
	VideoBits int `yaml:"video_bits"`

	InstanceBits int `yaml:"instance_bits"`

	CDCGearMaskS uint64 `yaml:"cdc_gear_mask_s"`
	CDCGearMaskL uint64 `yaml:"cdc_gear_mask_l"`
	CDCMinSize   int    `yaml:"cdc_min_size"`
	CDCMaxSize   int    `yaml:"cdc_max_size"`
	CDCReadSize  int    `yaml:"cdc_read_size"`

	MinhashPermutations int `yaml:"minhash_permutations"`

	VideoVecLen int `yaml:"video_vector_len"`
}

// DefaultOptions returns the values pinned by spec.md §3, except
// MetaNgramSizeTitle, which is 3 (DESIGN.md, Open Question decision 3).
func DefaultOptions() *Options {
	return &Options{
		MetaBits:                 64,
		MetaTrimTitle:            128,
		MetaTrimExtra:            4096,
		MetaNgramSizeTitle:       3,
		MetaNgramSizeExtraText:   3,
		MetaNgramSizeExtraBinary: 3,

		TextNgramSize: 13,
		TextBits:      64,

		ImageBits: 64,
		ImageTrim: 32,

		MixedBits: 64,

		DataBits:         64,
		DataAvgChunkSize: 1024,

		AudioBits: 256,
		VideoBits: 256,

		InstanceBits: 64,

		CDCGearMaskS: 0x0003590703530000,
		CDCGearMaskL: 0x0000d90003530000,
		CDCMinSize:   256,
		CDCMaxSize:   65536,
		CDCReadSize:  262144,

		MinhashPermutations: 64,

		VideoVecLen: 380,
	}
}
